package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/collections"
	"bakeryops/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateOrphanRecordsToCompany(app); err != nil {
			log.Printf("Warning: company migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply active company middleware globally
		se.Router.BindFunc(handlers.ActiveCompanyMiddleware(app))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleDashboard(app))

		// ── Company CRUD and activation ─────────────────────────
		se.Router.GET("/companies", handlers.HandleCompanyList(app))
		se.Router.GET("/companies/new", handlers.HandleCompanyCreate(app))
		se.Router.POST("/companies", handlers.HandleCompanySave(app))
		se.Router.GET("/companies/{id}/edit", handlers.HandleCompanyEdit(app))
		se.Router.POST("/companies/{id}", handlers.HandleCompanyUpdate(app))
		se.Router.POST("/companies/{id}/activate", handlers.HandleCompanyActivate(app))
		se.Router.DELETE("/companies/{id}", handlers.HandleCompanyDelete(app))

		// ── Ingredient import/export (before {id} routes) ───────
		se.Router.GET("/ingredients/import/template", handlers.HandleIngredientTemplateDownload(app))
		se.Router.GET("/ingredients/import", handlers.HandleIngredientImportPage(app))
		se.Router.POST("/ingredients/import/validate", handlers.HandleIngredientValidate(app))
		se.Router.POST("/ingredients/import/commit", handlers.HandleIngredientImportCommit(app))
		se.Router.POST("/ingredients/import/error-report", handlers.HandleIngredientErrorReport(app))
		se.Router.GET("/ingredients/export", handlers.HandleIngredientExportExcel(app))

		// ── Ingredient CRUD ─────────────────────────────────────
		se.Router.GET("/ingredients", handlers.HandleIngredientList(app))
		se.Router.GET("/ingredients/new", handlers.HandleIngredientCreate(app))
		se.Router.POST("/ingredients", handlers.HandleIngredientSave(app))
		se.Router.GET("/ingredients/{id}/edit", handlers.HandleIngredientEdit(app))
		se.Router.POST("/ingredients/{id}", handlers.HandleIngredientUpdate(app))
		se.Router.DELETE("/ingredients/{id}", handlers.HandleIngredientDelete(app))

		// ── Recipe CRUD and costing ─────────────────────────────
		se.Router.GET("/recipes", handlers.HandleRecipeList(app))
		se.Router.GET("/recipes/new", handlers.HandleRecipeCreate(app))
		se.Router.POST("/recipes", handlers.HandleRecipeSave(app))
		se.Router.GET("/recipes/{id}/edit", handlers.HandleRecipeEdit(app))
		se.Router.POST("/recipes/{id}/edit", handlers.HandleRecipeUpdate(app))
		se.Router.POST("/recipes/{id}/lines", handlers.HandleRecipeAddLine(app))
		se.Router.DELETE("/recipes/{id}/lines/{lineId}", handlers.HandleRecipeDeleteLine(app))
		se.Router.POST("/recipes/{id}/sell-price", handlers.HandleRecipeSellPrice(app))
		se.Router.GET("/recipes/{id}/export/excel", handlers.HandleRecipeExportExcel(app))
		se.Router.GET("/recipes/{id}/export/pdf", handlers.HandleRecipeExportPDF(app))
		se.Router.GET("/recipes/{id}", handlers.HandleRecipeView(app))
		se.Router.DELETE("/recipes/{id}", handlers.HandleRecipeDelete(app))

		// ── Wholesale orders ────────────────────────────────────
		se.Router.GET("/orders", handlers.HandleOrderList(app))
		se.Router.GET("/orders/new", handlers.HandleOrderCreate(app))
		se.Router.POST("/orders", handlers.HandleOrderSave(app))
		se.Router.GET("/orders/{id}/edit", handlers.HandleOrderEdit(app))
		se.Router.POST("/orders/{id}/edit", handlers.HandleOrderUpdate(app))
		se.Router.POST("/orders/{id}/items", handlers.HandleOrderAddItem(app))
		se.Router.DELETE("/orders/{id}/items/{itemId}", handlers.HandleOrderDeleteItem(app))
		se.Router.POST("/orders/{id}/status", handlers.HandleOrderStatus(app))
		se.Router.GET("/orders/{id}/export/pdf", handlers.HandleOrderExportPDF(app))
		se.Router.GET("/orders/{id}", handlers.HandleOrderView(app))
		se.Router.DELETE("/orders/{id}", handlers.HandleOrderDelete(app))

		// ── Production plans ────────────────────────────────────
		se.Router.GET("/production", handlers.HandlePlanList(app))
		se.Router.GET("/production/new", handlers.HandlePlanCreate(app))
		se.Router.POST("/production", handlers.HandlePlanSave(app))
		se.Router.POST("/production/{id}/items", handlers.HandlePlanAddItem(app))
		se.Router.DELETE("/production/{id}/items/{itemId}", handlers.HandlePlanDeleteItem(app))
		se.Router.GET("/production/{id}", handlers.HandlePlanView(app))
		se.Router.DELETE("/production/{id}", handlers.HandlePlanDelete(app))

		// ── Staff rota ──────────────────────────────────────────
		se.Router.GET("/shifts", handlers.HandleShiftList(app))
		se.Router.POST("/shifts", handlers.HandleShiftSave(app))
		se.Router.DELETE("/shifts/{id}", handlers.HandleShiftDelete(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
