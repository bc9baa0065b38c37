package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	CreateWorkbookAction(c *gin.Context)
	GetWorkbookAction(c *gin.Context)
	CloseWorkbookAction(c *gin.Context)
	ListWorkbooksAction(c *gin.Context)
	ListSavedAction(c *gin.Context)
	DeleteSavedAction(c *gin.Context)

	AddWorksheetAction(c *gin.Context)
	RemoveWorksheetAction(c *gin.Context)
	UpdateWorksheetAction(c *gin.Context)
	SetCurrentWorksheetAction(c *gin.Context)
	GetWorksheetAction(c *gin.Context)

	GetCellAction(c *gin.Context)
	SetCellAction(c *gin.Context)

	ExportCsvAction(c *gin.Context)
	ImportCsvAction(c *gin.Context)
	GetDocumentAction(c *gin.Context)
	LoadDocumentAction(c *gin.Context)

	SaveAction(c *gin.Context)
	RestoreAction(c *gin.Context)

	SearchAction(c *gin.Context)
	ReplaceAction(c *gin.Context)

	SubscribeAction(c *gin.Context)
}
