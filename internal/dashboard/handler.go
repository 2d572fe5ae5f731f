package dashboard

import (
	"net/http"

	"github.com/chasselife/xpnse/internal/transport"
	"github.com/chasselife/xpnse/pkg/logger"
)

type ServiceAPI interface {
	Summaries() ([]Summary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.Summaries()
	if err != nil {
		h.Logger.Error("GetDashboard: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summaries)
}
