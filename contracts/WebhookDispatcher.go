package contracts

const (
	EventCellChanged             = "cell-changed"
	EventWorksheetAdded          = "worksheet-added"
	EventWorksheetRemoved        = "worksheet-removed"
	EventCurrentWorksheetChanged = "current-worksheet-changed"
	EventNameChanged             = "name-changed"
)

type WorkbookEvent struct {
	WorkbookId string `json:"workbookId"`
	Event      string `json:"event"`
	Worksheet  int    `json:"worksheet"`
	Name       string `json:"name,omitempty"`
	Cell       *Cell  `json:"cell,omitempty"`
}

type WebhookDispatcher interface {
	SetWebhookUrl(workbookId string, webhookUrl string)
	GetWebhookUrl(workbookId string) string
	Notify(event *WorkbookEvent)
	Start()
	Close()
}
