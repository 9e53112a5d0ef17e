package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/services"
	"bakeryops/templates"
)

// HandleShiftList renders the staff rota page.
func HandleShiftList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		data := buildShiftListData(app, e, companyID)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ShiftListContent(data)
		} else {
			component = templates.ShiftListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func buildShiftListData(app *pocketbase.PocketBase, e *core.RequestEvent, companyID string) templates.ShiftListData {
	records, err := app.FindRecordsByFilter(
		"shifts",
		"company = {:companyId}",
		"-shift_date,start",
		0, 0,
		map[string]any{"companyId": companyID},
	)
	if err != nil {
		log.Printf("shift_list: could not query shifts: %v", err)
		records = nil
	}

	var items []templates.ShiftListItem
	for _, rec := range records {
		items = append(items, templates.ShiftListItem{
			ID:        rec.Id,
			StaffName: rec.GetString("staff_name"),
			Role:      rec.GetString("role"),
			ShiftDate: rec.GetString("shift_date"),
			Start:     rec.GetString("start"),
			End:       rec.GetString("end"),
		})
	}

	return templates.ShiftListData{
		Header:      GetHeaderData(e.Request),
		Items:       items,
		RoleOptions: services.ShiftRoleOptions,
	}
}

// HandleShiftSave processes the inline add-shift form and re-renders the rota.
// Route: POST /shifts
func HandleShiftSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		staffName := strings.TrimSpace(e.Request.FormValue("staff_name"))
		if staffName == "" {
			return ErrorToast(e, http.StatusBadRequest, "Staff name is required")
		}
		shiftDate := e.Request.FormValue("shift_date")
		if shiftDate == "" {
			return ErrorToast(e, http.StatusBadRequest, "Shift date is required")
		}

		role := e.Request.FormValue("role")
		valid := false
		for _, r := range services.ShiftRoleOptions {
			if r == role {
				valid = true
				break
			}
		}
		if !valid {
			return ErrorToast(e, http.StatusBadRequest, "Invalid role")
		}

		shiftsCol, err := app.FindCollectionByNameOrId("shifts")
		if err != nil {
			log.Printf("shift_save: could not find shifts collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(shiftsCol)
		rec.Set("company", companyID)
		rec.Set("staff_name", staffName)
		rec.Set("role", role)
		rec.Set("shift_date", shiftDate)
		rec.Set("start", e.Request.FormValue("start"))
		rec.Set("end", e.Request.FormValue("end"))
		if err := app.Save(rec); err != nil {
			log.Printf("shift_save: could not save shift: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Shift added")
		data := buildShiftListData(app, e, companyID)
		return templates.ShiftListContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleShiftDelete removes a shift from the rota.
// Route: DELETE /shifts/{id}
func HandleShiftDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("shifts", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Shift not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("shift_delete: could not delete shift %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Shift removed")
		return e.String(200, "")
	}
}
