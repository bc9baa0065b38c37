package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vanish000/Spreadsheet/codec"
	"github.com/vanish000/Spreadsheet/contracts"
	"github.com/vanish000/Spreadsheet/search"
	"github.com/vanish000/Spreadsheet/spreadsheet"
)

type ApiController struct {
	Sessions           *WorkbookSessions
	WorkbookRepository contracts.WorkbookRepository
	WebhookDispatcher  contracts.WebhookDispatcher
	CellAddress        contracts.CellAddressParser

	documentCodec *codec.DocumentCodec
	csvCodec      *codec.CsvCodec
}

type WorkbookEndpointParams struct {
	WorkbookId string `uri:"workbook_id" binding:"required"`
}

type WorksheetEndpointParams struct {
	WorkbookId string `uri:"workbook_id" binding:"required"`
	Index      string `uri:"index" binding:"required"`
}

type CellEndpointParams struct {
	WorkbookId string `uri:"workbook_id" binding:"required"`
	Index      string `uri:"index" binding:"required"`
	CellId     string `uri:"cell_id" binding:"required"`
}

type CreateWorkbookRequest struct {
	Title string `json:"title"`
}

type AddWorksheetRequest struct {
	Name string `json:"name"`
}

type UpdateWorksheetRequest struct {
	Name        *string `json:"name"`
	RowCount    *int    `json:"rowCount"`
	ColumnCount *int    `json:"columnCount"`
}

type SetCurrentWorksheetRequest struct {
	Index *int `json:"index" binding:"required"`
}

// SetCellRequest writes the cell content unless only readOnly is given.
// A string value starting with "=" is stored as a formula.
type SetCellRequest struct {
	Value    any     `json:"value"`
	Formula  *string `json:"formula"`
	ReadOnly *bool   `json:"readOnly"`
}

type SearchRequest struct {
	Text          string `form:"text" json:"text" binding:"required"`
	CaseSensitive bool   `form:"caseSensitive" json:"caseSensitive"`
	WholeWord     bool   `form:"wholeWord" json:"wholeWord"`
}

type ReplaceRequest struct {
	SearchRequest
	Replacement string `json:"replacement"`
	Address     string `json:"address"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

type WorksheetResponse struct {
	contracts.WorksheetSummary
	Cells contracts.CellList `json:"cells"`
}

type SearchResponse struct {
	Results []*contracts.Cell `json:"results"`
}

func NewApiController(sessions *WorkbookSessions, workbookRepository contracts.WorkbookRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		Sessions:           sessions,
		WorkbookRepository: workbookRepository,
		WebhookDispatcher:  webhookDispatcher,
		CellAddress:        NewCellAddress(),
		documentCodec:      codec.NewDocumentCodec(),
		csvCodec:           codec.NewCsvCodec(),
	}
}

func (api *ApiController) CreateWorkbookAction(c *gin.Context) {
	request := CreateWorkbookRequest{}
	if err := api.bindOptionalJSON(c, &request); err != nil {
		api.respondError(c, err)
		return
	}

	session := api.Sessions.Create(request.Title)

	session.Lock()
	defer session.Unlock()

	c.JSON(http.StatusCreated, api.workbookSummary(session))
}

func (api *ApiController) GetWorkbookAction(c *gin.Context) {
	api.withWorkbook(c, func(session *WorkbookSession) {
		c.JSON(http.StatusOK, api.workbookSummary(session))
	})
}

func (api *ApiController) CloseWorkbookAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	err := api.bindUri(c, &params)

	if err == nil {
		err = api.Sessions.Close(params.WorkbookId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	if api.WebhookDispatcher != nil {
		workbookId, _ := CanonicalWorkbookId(params.WorkbookId)
		api.WebhookDispatcher.SetWebhookUrl(workbookId, "")
	}

	c.Status(http.StatusNoContent)
}

func (api *ApiController) ListWorkbooksAction(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workbooks": api.Sessions.Ids()})
}

func (api *ApiController) ListSavedAction(c *gin.Context) {
	workbookIds, err := api.WorkbookRepository.List()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workbooks": workbookIds})
}

func (api *ApiController) DeleteSavedAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	err := api.bindUri(c, &params)

	var workbookId string
	if err == nil {
		workbookId, err = CanonicalWorkbookId(params.WorkbookId)
	}
	if err == nil {
		err = api.WorkbookRepository.Delete(workbookId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (api *ApiController) AddWorksheetAction(c *gin.Context) {
	request := AddWorksheetRequest{}
	if err := api.bindOptionalJSON(c, &request); err != nil {
		api.respondError(c, err)
		return
	}

	api.withWorkbook(c, func(session *WorkbookSession) {
		session.Workbook.AddWorksheet(request.Name)

		index := session.Workbook.WorksheetCount() - 1
		c.JSON(http.StatusCreated, api.worksheetSummary(index, session.Workbook.Worksheet(index)))
	})
}

func (api *ApiController) RemoveWorksheetAction(c *gin.Context) {
	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		if session.Workbook.WorksheetCount() <= 1 {
			api.respondError(c, contracts.LastWorksheetError)
			return
		}

		session.Workbook.RemoveWorksheet(index)
		c.JSON(http.StatusOK, api.workbookSummary(session))
	})
}

func (api *ApiController) UpdateWorksheetAction(c *gin.Context) {
	request := UpdateWorksheetRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
		return
	}

	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		if request.Name != nil {
			worksheet.SetName(*request.Name)
		}

		if request.RowCount != nil || request.ColumnCount != nil {
			rowCount, columnCount := worksheet.RowCount(), worksheet.ColumnCount()
			if request.RowCount != nil {
				rowCount = *request.RowCount
			}
			if request.ColumnCount != nil {
				columnCount = *request.ColumnCount
			}
			worksheet.Resize(rowCount, columnCount)
		}

		c.JSON(http.StatusOK, api.worksheetSummary(index, worksheet))
	})
}

func (api *ApiController) SetCurrentWorksheetAction(c *gin.Context) {
	request := SetCurrentWorksheetRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
		return
	}

	api.withWorkbook(c, func(session *WorkbookSession) {
		index := *request.Index
		if session.Workbook.Worksheet(index) == nil {
			api.respondError(c, fmt.Errorf("%d: %w", index, contracts.WorksheetNotFoundError))
			return
		}

		session.Workbook.SetCurrentWorksheet(index)
		c.JSON(http.StatusOK, api.workbookSummary(session))
	})
}

func (api *ApiController) GetWorksheetAction(c *gin.Context) {
	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		response := WorksheetResponse{
			WorksheetSummary: api.worksheetSummary(index, worksheet),
			Cells:            contracts.CellList{},
		}

		for _, position := range worksheet.Positions() {
			if position.Row >= worksheet.RowCount() || position.Column >= worksheet.ColumnCount() {
				continue
			}

			cell, _ := worksheet.CellAt(position.Row, position.Column)
			if cell.IsEmpty() {
				continue
			}

			cellResponse := NewCellResponse(api.CellAddress, position, cell)
			response.Cells[cellResponse.Address] = cellResponse
		}

		c.JSON(http.StatusOK, response)
	})
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	if err := api.bindUri(c, &params); err != nil {
		api.respondError(c, err)
		return
	}

	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		position, err := api.parseCellId(params.CellId)
		if err != nil {
			api.respondError(c, err)
			return
		}

		cell, ok := worksheet.CellAt(position.Row, position.Column)
		if !ok {
			api.respondError(c, fmt.Errorf("%s: %w", params.CellId, contracts.CellNotFoundError))
			return
		}

		c.JSON(http.StatusOK, NewCellResponse(api.CellAddress, position, cell))
	})
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	err := api.bindUri(c, &params)
	if err == nil {
		if err = c.ShouldBindJSON(&request); err != nil {
			err = fmt.Errorf("%w: %s", contracts.InvalidRequestError, err)
		}
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		position, err := api.parseCellId(params.CellId)
		if err != nil {
			api.respondError(c, err)
			return
		}

		writeContent := request.Formula != nil || request.Value != nil || request.ReadOnly == nil

		var write func(cell *spreadsheet.Cell)
		if writeContent {
			if write, err = api.cellWriter(request); err != nil {
				api.respondError(c, err)
				return
			}
		}

		existing, exists := worksheet.CellAt(position.Row, position.Column)
		if writeContent && exists && existing.IsReadOnly() && (request.ReadOnly == nil || *request.ReadOnly) {
			api.respondError(c, fmt.Errorf("%s: %w", params.CellId, contracts.CellReadOnlyError))
			return
		}

		cell := worksheet.Cell(position.Row, position.Column)
		if request.ReadOnly != nil {
			cell.SetReadOnly(*request.ReadOnly)
		}

		if write != nil {
			write(cell)
		}

		c.JSON(http.StatusCreated, NewCellResponse(api.CellAddress, position, cell))
	})
}

func (api *ApiController) ExportCsvAction(c *gin.Context) {
	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		buffer := bytes.Buffer{}
		if err := api.csvCodec.Export(worksheet, &buffer); err != nil {
			api.respondError(c, err)
			return
		}

		c.Data(http.StatusOK, "text/csv; charset=utf-8", buffer.Bytes())
	})
}

func (api *ApiController) ImportCsvAction(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
		return
	}

	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		if err := api.csvCodec.Import(worksheet, bytes.NewReader(body)); err != nil {
			api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
			return
		}

		c.JSON(http.StatusOK, api.worksheetSummary(index, worksheet))
	})
}

func (api *ApiController) GetDocumentAction(c *gin.Context) {
	api.withWorkbook(c, func(session *WorkbookSession) {
		data, err := api.documentCodec.Encode(session.Workbook)
		if err != nil {
			api.respondError(c, err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	})
}

func (api *ApiController) LoadDocumentAction(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
		return
	}

	api.withWorkbook(c, func(session *WorkbookSession) {
		if err := api.documentCodec.Decode(body, session.Workbook); err != nil {
			api.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, api.workbookSummary(session))
	})
}

func (api *ApiController) SaveAction(c *gin.Context) {
	api.withWorkbook(c, func(session *WorkbookSession) {
		data, err := api.documentCodec.Encode(session.Workbook)
		if err == nil {
			err = api.WorkbookRepository.Save(session.Id, &contracts.WorkbookRecord{
				Title:    session.Title,
				Document: data,
			})
		}

		if err != nil {
			api.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, api.workbookSummary(session))
	})
}

// RestoreAction opens the saved workbook, reusing the session when it is already open
func (api *ApiController) RestoreAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	err := api.bindUri(c, &params)

	var workbookId string
	if err == nil {
		workbookId, err = CanonicalWorkbookId(params.WorkbookId)
	}

	var record *contracts.WorkbookRecord
	if err == nil {
		record, err = api.WorkbookRepository.Load(workbookId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	session, created, _ := api.Sessions.Open(workbookId, record.Title)

	session.Lock()
	defer session.Unlock()

	if err = api.documentCodec.Decode(record.Document, session.Workbook); err != nil {
		if created {
			_ = api.Sessions.Close(workbookId)
		}
		api.respondError(c, err)
		return
	}
	session.Title = record.Title

	c.JSON(http.StatusOK, api.workbookSummary(session))
}

func (api *ApiController) SearchAction(c *gin.Context) {
	request := SearchRequest{}
	if err := c.ShouldBindQuery(&request); err != nil {
		api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
		return
	}

	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		response := SearchResponse{Results: make([]*contracts.Cell, 0)}

		for _, result := range search.Find(worksheet, request.Text, request.options()) {
			position := spreadsheet.CellPosition{Row: result.Row, Column: result.Col}
			cell, _ := worksheet.CellAt(result.Row, result.Col)
			response.Results = append(response.Results, NewCellResponse(api.CellAddress, position, cell))
		}

		c.JSON(http.StatusOK, response)
	})
}

func (api *ApiController) ReplaceAction(c *gin.Context) {
	request := ReplaceRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
		return
	}

	api.withWorksheet(c, func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet) {
		if request.Address == "" {
			replaced, err := search.ReplaceAll(worksheet, request.Text, request.Replacement, request.options())
			if err != nil {
				api.respondError(c, err)
				return
			}

			c.JSON(http.StatusOK, gin.H{"replaced": replaced})
			return
		}

		position, err := api.parseCellId(request.Address)
		if err != nil {
			api.respondError(c, err)
			return
		}

		result := search.Result{Row: position.Row, Col: position.Column}
		err = search.ReplaceAt(worksheet, result, request.Text, request.Replacement, request.options())
		if errors.Is(err, search.ErrReadOnly) {
			err = fmt.Errorf("%s: %w", request.Address, contracts.CellReadOnlyError)
		} else if errors.Is(err, search.ErrCellMissing) {
			err = fmt.Errorf("%s: %w", request.Address, contracts.CellNotFoundError)
		}

		if err != nil {
			api.respondError(c, err)
			return
		}

		cell, _ := worksheet.CellAt(position.Row, position.Column)
		c.JSON(http.StatusOK, NewCellResponse(api.CellAddress, position, cell))
	})
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	request := SubscribeRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		api.respondError(c, fmt.Errorf("%w: %s", contracts.InvalidRequestError, err))
		return
	}

	api.withWorkbook(c, func(session *WorkbookSession) {
		api.WebhookDispatcher.SetWebhookUrl(session.Id, request.WebhookUrl)
		c.JSON(http.StatusOK, request)
	})
}

// cellWriter rejects an unsupported value before any cell is touched
func (api *ApiController) cellWriter(request SetCellRequest) (func(cell *spreadsheet.Cell), error) {
	if request.Formula != nil {
		formula := *request.Formula
		return func(cell *spreadsheet.Cell) { cell.SetFormula(formula) }, nil
	}

	var value spreadsheet.Value
	switch typed := request.Value.(type) {
	case nil:
		value = spreadsheet.EmptyValue()
	case float64:
		value = spreadsheet.NumberValue(typed)
	case bool:
		value = spreadsheet.TextValue(strconv.FormatBool(typed))
	case string:
		if strings.HasPrefix(typed, spreadsheet.FormulaPrefix) {
			return func(cell *spreadsheet.Cell) { cell.SetFormula(typed) }, nil
		}
		value = spreadsheet.TextValue(typed)
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", contracts.InvalidRequestError, request.Value)
	}

	return func(cell *spreadsheet.Cell) { cell.SetValue(value) }, nil
}

func (api *ApiController) withWorkbook(c *gin.Context, handle func(session *WorkbookSession)) {
	params := WorkbookEndpointParams{}
	err := api.bindUri(c, &params)

	var session *WorkbookSession
	if err == nil {
		session, err = api.Sessions.Get(params.WorkbookId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	session.Lock()
	defer session.Unlock()

	handle(session)
}

func (api *ApiController) withWorksheet(c *gin.Context, handle func(session *WorkbookSession, index int, worksheet *spreadsheet.Worksheet)) {
	params := WorksheetEndpointParams{}
	if err := api.bindUri(c, &params); err != nil {
		api.respondError(c, err)
		return
	}

	api.withWorkbook(c, func(session *WorkbookSession) {
		index, err := strconv.Atoi(params.Index)
		var worksheet *spreadsheet.Worksheet
		if err == nil {
			worksheet = session.Workbook.Worksheet(index)
		}

		if worksheet == nil {
			api.respondError(c, fmt.Errorf("%s: %w", params.Index, contracts.WorksheetNotFoundError))
			return
		}

		handle(session, index, worksheet)
	})
}

func (api *ApiController) bindUri(c *gin.Context, params any) error {
	if err := c.ShouldBindUri(params); err != nil {
		return fmt.Errorf("%w: %s", contracts.InvalidRequestError, err)
	}
	return nil
}

// bindOptionalJSON accepts an empty body
func (api *ApiController) bindOptionalJSON(c *gin.Context, request any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}

	if err := c.ShouldBindJSON(request); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s", contracts.InvalidRequestError, err)
	}
	return nil
}

func (api *ApiController) parseCellId(cellId string) (spreadsheet.CellPosition, error) {
	row, col, err := api.CellAddress.Parse(cellId)
	return spreadsheet.CellPosition{Row: row, Column: col}, err
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, contracts.WorkbookNotFoundError),
		errors.Is(err, contracts.WorksheetNotFoundError),
		errors.Is(err, contracts.CellNotFoundError),
		errors.Is(err, contracts.SavedWorkbookNotFoundError):
		status = http.StatusNotFound
	case errors.Is(err, contracts.CellReadOnlyError):
		status = http.StatusForbidden
	case errors.Is(err, contracts.InvalidRequestError):
		status = http.StatusBadRequest
	case errors.Is(err, contracts.InvalidCellAddressError),
		errors.Is(err, contracts.LastWorksheetError),
		errors.Is(err, codec.ErrInvalidDocument),
		errors.Is(err, codec.ErrUnsupportedVersion):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func (api *ApiController) workbookSummary(session *WorkbookSession) contracts.WorkbookSummary {
	summary := contracts.WorkbookSummary{
		Id:               session.Id,
		Title:            session.Title,
		CurrentWorksheet: session.Workbook.CurrentIndex(),
		Worksheets:       make([]contracts.WorksheetSummary, 0, session.Workbook.WorksheetCount()),
	}

	for index, worksheet := range session.Workbook.Worksheets() {
		summary.Worksheets = append(summary.Worksheets, api.worksheetSummary(index, worksheet))
	}

	return summary
}

func (api *ApiController) worksheetSummary(index int, worksheet *spreadsheet.Worksheet) contracts.WorksheetSummary {
	return contracts.WorksheetSummary{
		Index:       index,
		Name:        worksheet.Name(),
		RowCount:    worksheet.RowCount(),
		ColumnCount: worksheet.ColumnCount(),
		CellCount:   worksheet.CellCount(),
	}
}

func (r SearchRequest) options() search.Options {
	return search.Options{CaseSensitive: r.CaseSensitive, WholeWord: r.WholeWord}
}
