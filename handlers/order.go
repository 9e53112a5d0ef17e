package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/services"
	"bakeryops/templates"
)

// statusClass maps an order status to its css class.
func statusClass(status string) string {
	return "status-" + strings.ReplaceAll(status, "_", "-")
}

// statusLabel renders an order status for display.
func statusLabel(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}

// HandleOrderList renders the orders page for the active company.
func HandleOrderList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		records, err := app.FindRecordsByFilter(
			"orders",
			"company = {:companyId}",
			"-created",
			0, 0,
			map[string]any{"companyId": companyID},
		)
		if err != nil {
			log.Printf("order_list: could not query orders: %v", err)
			records = nil
		}

		var items []templates.OrderListItem
		for _, rec := range records {
			itemRecords, err := app.FindRecordsByFilter(
				"order_items",
				"order = {:orderId}",
				"created",
				0, 0,
				map[string]any{"orderId": rec.Id},
			)
			if err != nil {
				itemRecords = nil
			}

			var total float64
			for _, item := range itemRecords {
				total += services.OrderLineTotal(item.GetFloat("qty"), item.GetFloat("unit_price"))
			}

			delivery := "—"
			if d := rec.GetString("delivery_date"); d != "" {
				delivery = d
			}

			status := rec.GetString("status")
			items = append(items, templates.OrderListItem{
				ID:           rec.Id,
				OrderNumber:  rec.GetString("order_number"),
				Customer:     rec.GetString("customer"),
				DeliveryDate: delivery,
				Status:       statusLabel(status),
				StatusClass:  statusClass(status),
				Total:        services.FormatGBP(total),
			})
		}

		data := templates.OrderListData{
			Header: GetHeaderData(e.Request),
			Items:  items,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.OrderListContent(data)
		} else {
			component = templates.OrderListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleOrderCreate renders the new-order form.
func HandleOrderCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.OrderFormData{Header: GetHeaderData(e.Request)}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.OrderFormContent(data)
		} else {
			component = templates.OrderFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleOrderSave processes the new-order form. The order number is
// allocated here, scoped to the company and fiscal year.
func HandleOrderSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		customer := strings.TrimSpace(e.Request.FormValue("customer"))
		if customer == "" {
			return ErrorToast(e, http.StatusBadRequest, "Customer name is required")
		}

		orderNumber, err := services.GenerateOrderNumber(app, companyID, time.Now())
		if err != nil {
			log.Printf("order_save: could not generate order number: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		ordersCol, err := app.FindCollectionByNameOrId("orders")
		if err != nil {
			log.Printf("order_save: could not find orders collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(ordersCol)
		rec.Set("company", companyID)
		rec.Set("customer", customer)
		rec.Set("customer_contact", strings.TrimSpace(e.Request.FormValue("customer_contact")))
		rec.Set("customer_address", strings.TrimSpace(e.Request.FormValue("customer_address")))
		rec.Set("order_number", orderNumber)
		rec.Set("delivery_date", e.Request.FormValue("delivery_date"))
		rec.Set("status", "draft")
		rec.Set("notes", strings.TrimSpace(e.Request.FormValue("notes")))
		if err := app.Save(rec); err != nil {
			log.Printf("order_save: could not save order: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Order "+orderNumber+" created")
		e.Response.Header().Set("HX-Redirect", "/orders/"+rec.Id)
		return e.String(200, "OK")
	}
}

// HandleOrderEdit renders the edit form for an order.
func HandleOrderEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}

		data := templates.OrderFormData{
			Header:          GetHeaderData(e.Request),
			ID:              rec.Id,
			Customer:        rec.GetString("customer"),
			CustomerContact: rec.GetString("customer_contact"),
			CustomerAddress: rec.GetString("customer_address"),
			DeliveryDate:    rec.GetString("delivery_date"),
			Notes:           rec.GetString("notes"),
			IsEdit:          true,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.OrderFormContent(data)
		} else {
			component = templates.OrderFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleOrderUpdate processes the edit form submission. The order number
// never changes after creation.
func HandleOrderUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		customer := strings.TrimSpace(e.Request.FormValue("customer"))
		if customer == "" {
			return ErrorToast(e, http.StatusBadRequest, "Customer name is required")
		}

		rec.Set("customer", customer)
		rec.Set("customer_contact", strings.TrimSpace(e.Request.FormValue("customer_contact")))
		rec.Set("customer_address", strings.TrimSpace(e.Request.FormValue("customer_address")))
		rec.Set("delivery_date", e.Request.FormValue("delivery_date"))
		rec.Set("notes", strings.TrimSpace(e.Request.FormValue("notes")))
		if err := app.Save(rec); err != nil {
			log.Printf("order_update: could not save order %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Order saved")
		e.Response.Header().Set("HX-Redirect", "/orders/"+rec.Id)
		return e.String(200, "OK")
	}
}

// HandleOrderView renders the single-order page.
func HandleOrderView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}

		data := buildOrderViewData(app, e, rec)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.OrderViewContent(data)
		} else {
			component = templates.OrderViewPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildOrderViewData assembles the order view with line items and totals.
func buildOrderViewData(app *pocketbase.PocketBase, e *core.RequestEvent, rec *core.Record) templates.OrderViewData {
	itemRecords, err := app.FindRecordsByFilter(
		"order_items",
		"order = {:orderId}",
		"created",
		0, 0,
		map[string]any{"orderId": rec.Id},
	)
	if err != nil {
		log.Printf("order_view: could not query items for order %s: %v", rec.Id, err)
		itemRecords = nil
	}

	var items []templates.OrderItemView
	var total float64
	for _, item := range itemRecords {
		recipeName := "(deleted recipe)"
		if recipeID := item.GetString("recipe"); recipeID != "" {
			if recipe, err := app.FindRecordById("recipes", recipeID); err == nil {
				recipeName = recipe.GetString("name")
			}
		}

		qty := item.GetFloat("qty")
		unitPrice := item.GetFloat("unit_price")
		lineTotal := services.OrderLineTotal(qty, unitPrice)
		total += lineTotal

		items = append(items, templates.OrderItemView{
			ID:         item.Id,
			RecipeName: recipeName,
			Qty:        services.FormatQty(qty),
			UnitPrice:  services.FormatGBP(unitPrice),
			LineTotal:  services.FormatGBP(lineTotal),
		})
	}

	delivery := "—"
	if d := rec.GetString("delivery_date"); d != "" {
		delivery = d
	}

	return templates.OrderViewData{
		Header:          GetHeaderData(e.Request),
		ID:              rec.Id,
		OrderNumber:     rec.GetString("order_number"),
		Customer:        rec.GetString("customer"),
		CustomerContact: rec.GetString("customer_contact"),
		CustomerAddress: rec.GetString("customer_address"),
		DeliveryDate:    delivery,
		Status:          rec.GetString("status"),
		Notes:           rec.GetString("notes"),
		Items:           items,
		Total:           services.FormatGBP(total),
		StatusOptions:   services.OrderStatusOptions,
		RecipeOptions:   recipeOptions(app, rec.GetString("company")),
	}
}

// recipeOptions lists a company's recipes for the add-item dropdown, with
// sell prices so the client can pre-fill the unit price.
func recipeOptions(app *pocketbase.PocketBase, companyID string) []templates.RecipeOption {
	records, err := app.FindRecordsByFilter(
		"recipes",
		"company = {:companyId}",
		"name",
		0, 0,
		map[string]any{"companyId": companyID},
	)
	if err != nil {
		log.Printf("order: could not query recipes for options: %v", err)
		return nil
	}

	var options []templates.RecipeOption
	for _, rec := range records {
		price := ""
		if sp := rec.GetFloat("sell_price"); sp > 0 {
			price = strconv.FormatFloat(sp, 'f', 2, 64)
		}
		options = append(options, templates.RecipeOption{
			ID:        rec.Id,
			Name:      rec.GetString("name"),
			SellPrice: price,
		})
	}
	return options
}

// HandleOrderAddItem adds a line item and re-renders the order view.
// Route: POST /orders/{id}/items
func HandleOrderAddItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		recipeID := e.Request.FormValue("recipe")
		recipe, err := app.FindRecordById("recipes", recipeID)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Recipe not found")
		}

		qty, err := strconv.ParseFloat(e.Request.FormValue("qty"), 64)
		if err != nil || qty <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Quantity must be a positive number")
		}

		// Default the unit price to the recipe's sell price
		unitPrice := recipe.GetFloat("sell_price")
		if raw := strings.TrimSpace(e.Request.FormValue("unit_price")); raw != "" {
			unitPrice, err = strconv.ParseFloat(raw, 64)
			if err != nil || unitPrice < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Unit price must be a non-negative number")
			}
		}

		itemsCol, err := app.FindCollectionByNameOrId("order_items")
		if err != nil {
			log.Printf("order_item: could not find order_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		item := core.NewRecord(itemsCol)
		item.Set("order", rec.Id)
		item.Set("recipe", recipeID)
		item.Set("qty", qty)
		item.Set("unit_price", unitPrice)
		if err := app.Save(item); err != nil {
			log.Printf("order_item: could not save item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := buildOrderViewData(app, e, rec)
		return templates.OrderViewContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleOrderDeleteItem removes a line item and re-renders the order view.
// Route: DELETE /orders/{id}/items/{itemId}
func HandleOrderDeleteItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}

		item, err := app.FindRecordById("order_items", e.Request.PathValue("itemId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}
		if item.GetString("order") != rec.Id {
			return ErrorToast(e, http.StatusBadRequest, "Item does not belong to this order")
		}

		if err := app.Delete(item); err != nil {
			log.Printf("order_item: could not delete item %s: %v", item.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := buildOrderViewData(app, e, rec)
		return templates.OrderViewContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleOrderStatus updates the order lifecycle status.
// Route: POST /orders/{id}/status
func HandleOrderStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		status := e.Request.FormValue("status")
		valid := false
		for _, s := range services.OrderStatusOptions {
			if s == status {
				valid = true
				break
			}
		}
		if !valid {
			return ErrorToast(e, http.StatusBadRequest, "Invalid order status")
		}

		rec.Set("status", status)
		if err := app.Save(rec); err != nil {
			log.Printf("order_status: could not save order %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Status updated")
		data := buildOrderViewData(app, e, rec)
		return templates.OrderViewContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleOrderDelete deletes an order and, via cascade, its line items.
func HandleOrderDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("order_delete: could not delete order %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Order deleted")
		return e.String(200, "")
	}
}

// HandleOrderExportPDF downloads the order sheet as a PDF.
// Route: GET /orders/{id}/export/pdf
func HandleOrderExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.BuildOrderExportData(app, e.Request.PathValue("id"))
		if err != nil {
			log.Printf("order_export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Order not found")
		}

		pdfBytes, err := services.GenerateOrderPDF(data)
		if err != nil {
			log.Printf("order_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.OrderNumber))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
