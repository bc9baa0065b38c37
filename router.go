package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanish000/Spreadsheet/contracts"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.GET("/saved", controller.ListSavedAction)
	apiRouterGroup.DELETE("/saved/:workbook_id", controller.DeleteSavedAction)
	apiRouterGroup.GET("/workbooks", controller.ListWorkbooksAction)
	apiRouterGroup.POST("/workbooks", controller.CreateWorkbookAction)

	workbookGroup := apiRouterGroup.Group("/workbooks/:workbook_id")
	workbookGroup.GET("", controller.GetWorkbookAction)
	workbookGroup.DELETE("", controller.CloseWorkbookAction)
	workbookGroup.PUT("/current", controller.SetCurrentWorksheetAction)
	workbookGroup.GET("/document", controller.GetDocumentAction)
	workbookGroup.PUT("/document", controller.LoadDocumentAction)
	workbookGroup.POST("/save", controller.SaveAction)
	workbookGroup.POST("/restore", controller.RestoreAction)
	workbookGroup.POST("/"+subscribePath, controller.SubscribeAction)
	workbookGroup.POST("/worksheets", controller.AddWorksheetAction)

	worksheetGroup := workbookGroup.Group("/worksheets/:index")
	worksheetGroup.GET("", controller.GetWorksheetAction)
	worksheetGroup.PATCH("", controller.UpdateWorksheetAction)
	worksheetGroup.DELETE("", controller.RemoveWorksheetAction)
	worksheetGroup.GET("/csv", controller.ExportCsvAction)
	worksheetGroup.PUT("/csv", controller.ImportCsvAction)
	worksheetGroup.GET("/search", controller.SearchAction)
	worksheetGroup.POST("/replace", controller.ReplaceAction)
	worksheetGroup.GET("/cells/:cell_id", controller.GetCellAction)
	worksheetGroup.POST("/cells/:cell_id", controller.SetCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
