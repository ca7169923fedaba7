package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	exchangeRequest "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/exchange/request"
	exchangeResponse "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/exchange/response"
	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type ExchangeHandler struct {
	usecase domain.ExchangeUsecase
}

func NewExchangeHandler(usecase domain.ExchangeUsecase) *ExchangeHandler {
	return &ExchangeHandler{usecase: usecase}
}

// Currency handles POST /currency/: debits the per-request cost and returns
// the fetched rate.
func (h *ExchangeHandler) Currency(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req exchangeRequest.CurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.usecase.GetExchangeRate(r.Context(), userID, req.CurrencyCode)
	if err != nil {
		h.handleExchangeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exchangeResponse.ExchangeResponse{
		CurrencyCode: result.CurrencyCode,
		RateToUAH:    result.RateToUAH,
		Cost:         result.Cost,
		BalanceLeft:  result.BalanceLeft,
	})
}

// History handles GET /history/ with currency, date_from, date_to, page and
// limit query params.
func (h *ExchangeHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter, err := parseHistoryFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, total, err := h.usecase.GetHistory(r.Context(), userID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := exchangeResponse.HistoryResponse{
		Records: make([]exchangeResponse.HistoryRecord, len(records)),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	for i, record := range records {
		resp.Records[i] = exchangeResponse.HistoryRecord{
			ID:           record.ID,
			CurrencyCode: record.CurrencyCode,
			Rate:         record.Rate,
			CreatedAt:    record.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseHistoryFilter(r *http.Request) (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{
		CurrencyCode: r.URL.Query().Get("currency"),
		Page:         1,
		Limit:        50,
	}

	var err error
	if raw := r.URL.Query().Get("date_from"); raw != "" {
		if filter.DateFrom, err = time.Parse("2006-01-02", raw); err != nil {
			return filter, errors.New("date_from must be formatted as 2006-01-02")
		}
	}
	if raw := r.URL.Query().Get("date_to"); raw != "" {
		if filter.DateTo, err = time.Parse("2006-01-02", raw); err != nil {
			return filter, errors.New("date_to must be formatted as 2006-01-02")
		}
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if filter.Page, err = strconv.ParseInt(raw, 10, 64); err != nil || filter.Page < 1 {
			return filter, errors.New("page must be a positive integer")
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if filter.Limit, err = strconv.ParseInt(raw, 10, 64); err != nil || filter.Limit < 1 {
			return filter, errors.New("limit must be a positive integer")
		}
	}

	return filter, nil
}

func (h *ExchangeHandler) handleExchangeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCurrency), errors.Is(err, domain.ErrNoPositiveBalance):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotEnoughBalance):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrExternalAPI):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
