package rest

import (
	"net/http"

	"github.com/RichardKnop/legalserver"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (a *Adapter) healthHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: legalserver.ServiceName,
	})
}
