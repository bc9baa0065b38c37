package main

import (
	"bytes"
	"log"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"github.com/vanish000/Spreadsheet/contracts"
)

type WebhookSendCommand struct {
	Webhook string
	Event   *contracts.WorkbookEvent
}

// WebhookDispatcher posts workbook events to the url subscribed for the workbook.
// Events are dropped when the queue is full; notifying never blocks the caller.
type WebhookDispatcher struct {
	mutex        sync.RWMutex
	queue        chan WebhookSendCommand
	webhooks     map[string]string
	workersCount int
	timeout      time.Duration
	closed       bool
	workers      sync.WaitGroup
}

func NewWebhookDispatcher(config WebhooksConfig) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:        make(chan WebhookSendCommand, config.QueueSize),
		webhooks:     map[string]string{},
		workersCount: config.Workers,
		timeout:      config.Timeout(),
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(workbookId string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, workbookId)
	} else {
		manager.webhooks[workbookId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(workbookId string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[workbookId]
}

func (manager *WebhookDispatcher) Notify(event *contracts.WorkbookEvent) {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	webhook, ok := manager.webhooks[event.WorkbookId]
	if !ok || manager.closed {
		return
	}

	select {
	case manager.queue <- WebhookSendCommand{Webhook: webhook, Event: event}:
	default:
		log.Printf("Webhook queue is full, %s event for %s dropped\n", event.Event, event.WorkbookId)
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close stops accepting events and waits until the queued ones are sent
func (manager *WebhookDispatcher) Close() {
	manager.mutex.Lock()
	if !manager.closed {
		manager.closed = true
		close(manager.queue)
	}
	manager.mutex.Unlock()

	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	client := &http.Client{
		Timeout: manager.timeout,
	}

	for command := range manager.queue {
		payload, err := json.Marshal(command.Event)
		if err != nil {
			log.Printf("Webhook payload error: %s\n", err)
			continue
		}

		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
		if err != nil {
			log.Printf("Webhook send error: %s\n", err)
			continue
		}

		if response.StatusCode >= 300 {
			log.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
		_ = response.Body.Close()
	}
}
