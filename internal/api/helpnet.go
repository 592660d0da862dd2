package helpnet

import (
	"encoding/json"
	"errors"
	"net/http"

	interf "github.com/glkeru/helpnet/internal/interfaces"
	models "github.com/glkeru/helpnet/internal/models"
	service "github.com/glkeru/helpnet/internal/services"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HelpnetHandler struct {
	router   *mux.Router
	members  interf.MemberStorage
	pairings interf.PairingStorage
	assign   *service.AssignmentService
	confirm  *service.ConfirmService
	logger   *zap.Logger
}

type AssignResponse struct {
	Assigned bool `json:"assigned"`
}

func NewHandler(members interf.MemberStorage, pairings interf.PairingStorage, assign *service.AssignmentService, confirm *service.ConfirmService, logger *zap.Logger) *HelpnetHandler {
	router := mux.NewRouter()
	handler := &HelpnetHandler{router, members, pairings, assign, confirm, logger}
	router.Use(MiddlewareLog())
	router.HandleFunc("/sweep", handler.SweepHandler).Methods(http.MethodPost)
	router.HandleFunc("/assign/{uid}", handler.AssignHandler).Methods(http.MethodPost)
	router.HandleFunc("/helps/send/{uid}", handler.SendHelpsHandler).Methods(http.MethodGet)
	router.HandleFunc("/helps/receive/{uid}", handler.ReceiveHelpsHandler).Methods(http.MethodGet)
	router.HandleFunc("/helps/{docid}/confirm", handler.ConfirmHandler).Methods(http.MethodPost)
	router.HandleFunc("/helps/{docid}/reject", handler.RejectHandler).Methods(http.MethodPost)
	router.HandleFunc("/member/{uid}", handler.GetMemberHandler).Methods(http.MethodGet)
	router.HandleFunc("/levels", handler.GetLevelsHandler).Methods(http.MethodGet)

	return handler
}

func (h *HelpnetHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	h.router.ServeHTTP(w, res)
}

func (h *HelpnetHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (h *HelpnetHandler) writeJSON(w http.ResponseWriter, service string, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

// Массовый проход
func (h *HelpnetHandler) SweepHandler(w http.ResponseWriter, req *http.Request) {
	summary, err := h.assign.RunBulkSweep(req.Context())
	if err != nil {
		h.Log("Sweep", "SweepHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, "SweepHandler", summary)
}

// Мгновенное назначение получателя новому участнику
func (h *HelpnetHandler) AssignHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	uid := vars["uid"]
	err := h.assign.AssignInitialReceiver(req.Context(), uid)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Member not found", http.StatusNotFound)
			return
		}
		h.Log("Assign", "AssignHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	member, err := h.members.GetMember(req.Context(), uid)
	if err != nil {
		h.Log("DB get", "AssignHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, "AssignHandler", &AssignResponse{member.IsSendHelpAssigned})
}

// Исходящие обязательства участника
func (h *HelpnetHandler) SendHelpsHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	pairings, err := h.pairings.GetBySender(req.Context(), vars["uid"])
	if err != nil {
		h.Log("DB get", "SendHelpsHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, "SendHelpsHandler", pairings)
}

// Входящие пары участника
func (h *HelpnetHandler) ReceiveHelpsHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	pairings, err := h.pairings.GetByReceiver(req.Context(), vars["uid"])
	if err != nil {
		h.Log("DB get", "ReceiveHelpsHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, "ReceiveHelpsHandler", pairings)
}

// Подтверждение помощи получателем
func (h *HelpnetHandler) ConfirmHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	err := h.confirm.Confirm(req.Context(), vars["docid"])
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Pending pairing not found", http.StatusNotFound)
			return
		}
		h.Log("Confirm", "ConfirmHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Отклонение помощи
func (h *HelpnetHandler) RejectHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	err := h.confirm.Reject(req.Context(), vars["docid"])
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Pending pairing not found", http.StatusNotFound)
			return
		}
		h.Log("Reject", "RejectHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Карточка участника
func (h *HelpnetHandler) GetMemberHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	member, err := h.members.GetMember(req.Context(), vars["uid"])
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Member not found", http.StatusNotFound)
			return
		}
		h.Log("DB get", "GetMemberHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, "GetMemberHandler", member)
}

// Таблица уровней
func (h *HelpnetHandler) GetLevelsHandler(w http.ResponseWriter, req *http.Request) {
	h.writeJSON(w, "GetLevelsHandler", models.Levels())
}
