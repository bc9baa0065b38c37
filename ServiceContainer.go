package main

import (
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"

	"github.com/vanish000/Spreadsheet/contracts"
)

type ServiceContainer struct {
	Database           *bbolt.DB
	ApiController      contracts.ApiController
	WorkbookRepository contracts.WorkbookRepository
	WebhookDispatcher  contracts.WebhookDispatcher
	Sessions           *WorkbookSessions
	Router             *gin.Engine
}

func BuildServiceContainer(config *Config) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.Storage.DatabasePath, 0600, nil)
	if err != nil {
		return
	}

	serializer := NewRecordBinarySerializer()
	cellAddress := NewCellAddress()

	container.WebhookDispatcher = NewWebhookDispatcher(config.Webhooks)
	container.Sessions = NewWorkbookSessions(func(session *WorkbookSession) {
		ObserveWorkbook(container.WebhookDispatcher, cellAddress, session.Id, session.Workbook)
	})
	container.WorkbookRepository = NewWorkbookRepository(container.Database, serializer)
	container.ApiController = NewApiController(container.Sessions, container.WorkbookRepository, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
