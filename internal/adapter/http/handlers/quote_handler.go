package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webquote/internal/adapter/http/dto/request"
	"webquote/internal/adapter/http/dto/response"
	"webquote/internal/infrastructure/config"
	"webquote/internal/infrastructure/notion"
	"webquote/internal/usecase"
	"webquote/pkg"
)

// QuoteHandler handles the quote read API: single-quote lookup for the
// public rendering page and the filtered list for the admin view.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetQuote godoc
//
//	@Summary	Fetch one quote by id
//	@Tags		quotes
//	@Produce	json
//	@Param		id	path		string	true	"Notion page id (32 hex or hyphenated UUID)"
//	@Success	200	{object}	response.Envelope
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	404	{object}	pkg.HTTPError
//	@Failure	502	{object}	pkg.HTTPError
//	@Router		/api/quote/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromQuote(quote)))
}

// ListQuotes godoc
//
//	@Summary	List quotes for the admin view
//	@Tags		quotes
//	@Produce	json
//	@Param		page		query		int		false	"page number (default 1)"
//	@Param		pageSize	query		int		false	"items per page (default 10, max 100)"
//	@Param		status		query		string	false	"status filter"	Enums(pending, approved, rejected)
//	@Param		search		query		string	false	"customer name or quote number match"
//	@Success	200	{object}	response.Envelope
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	502	{object}	pkg.HTTPError
//	@Router		/api/admin/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var payload request.QuoteListRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PARAMS", "잘못된 페이지네이션 파라미터입니다.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListQuotes(c.Request.Context(), payload.ToParams())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Cache-Control", "private, max-age=30")
	c.JSON(http.StatusOK, response.Success(response.FromQuoteList(list)))
}

func mapQuoteError(err error) *pkg.AppError {
	var apiErr *notion.APIError

	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "유효하지 않은 견적서 ID 형식입니다.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPage), errors.Is(err, usecase.ErrInvalidPageSize):
		return pkg.NewDomainErrorSimple("INVALID_PARAMS", "잘못된 페이지네이션 파라미터입니다.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "잘못된 상태값입니다.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "견적서를 찾을 수 없습니다.", http.StatusNotFound)
	case errors.Is(err, notion.ErrNotConfigured), errors.Is(err, config.ErrNotionNotConfigured):
		return pkg.NewDomainErrorSimple("CONFIG_ERROR", "노션 연동이 설정되지 않았습니다.", http.StatusInternalServerError)
	case errors.As(err, &apiErr):
		// Upstream message is useful for diagnostics; the raw payload is not forwarded.
		return pkg.NewDomainError("NOTION_ERROR", apiErr.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "서버 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.", err, http.StatusInternalServerError)
	}
}
