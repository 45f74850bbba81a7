package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/notifyhub/sms-relay/internal/correlation"
	"github.com/notifyhub/sms-relay/internal/domain"
	"github.com/notifyhub/sms-relay/internal/service"
)

// SMSHandler exposes the dispatch service over HTTP.
type SMSHandler struct {
	svc    *service.DispatchService
	logger *zap.Logger
}

func NewSMSHandler(svc *service.DispatchService, logger *zap.Logger) *SMSHandler {
	return &SMSHandler{svc: svc, logger: logger}
}

// SendOTP handles POST /api/send-otp
//
// @Summary     Generate a one-time code and text it to the given numbers
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       body  body      domain.SendOTPRequest  true  "Destinations and optional template"
// @Success     200   {object}  map[string]any         "Gateway payload plus otp"
// @Failure     400   {object}  map[string]string
// @Failure     500   {object}  map[string]string
// @Router      /api/send-otp [post]
func (h *SMSHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.SendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		mapError(w, err)
		return
	}

	res, err := h.svc.DispatchOTP(r.Context(), req)
	if err != nil {
		h.fail(w, r, "send otp failed", err)
		return
	}
	respondJSON(w, res.StatusCode, res.Body)
}

// SendSetupSMS handles POST /api/send-setup-sms
//
// @Summary     Relay a plain text message to the given numbers
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       body  body      domain.SendSMSRequest  true  "Destinations and message"
// @Success     200   {object}  map[string]any         "Gateway payload"
// @Failure     400   {object}  map[string]string
// @Failure     500   {object}  map[string]string
// @Router      /api/send-setup-sms [post]
func (h *SMSHandler) SendSetupSMS(w http.ResponseWriter, r *http.Request) {
	var req domain.SendSMSRequest
	if err := decodeJSON(r, &req); err != nil {
		mapError(w, err)
		return
	}

	res, err := h.svc.DispatchPlainMessage(r.Context(), req)
	if err != nil {
		h.fail(w, r, "send setup sms failed", err)
		return
	}
	respondJSON(w, res.StatusCode, res.Body)
}

func (h *SMSHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	correlation.Logger(r.Context(), h.logger).Warn(msg, zap.Error(err))
	mapError(w, err)
}
