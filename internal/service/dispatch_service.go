package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/notifyhub/sms-relay/internal/correlation"
	"github.com/notifyhub/sms-relay/internal/domain"
	"github.com/notifyhub/sms-relay/internal/otp"
	"github.com/notifyhub/sms-relay/internal/provider"
)

// Endpoint names used as metric labels.
const (
	EndpointOTP = "send_otp"
	EndpointSMS = "send_setup_sms"
)

// Dispatch outcomes used as metric labels.
const (
	OutcomeSent     = "sent"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
	OutcomeConfig   = "config_error"
	OutcomeUpstream = "upstream_error"
	OutcomeInternal = "internal_error"
)

// OTPField is the response field carrying the generated code.
const OTPField = "otp"

// Result is the normalized response relayed back to the caller.
type Result struct {
	StatusCode int
	Body       map[string]any
}

// MetricHooks carries the metric callback injected by main.
// A nil OnDispatch is a no-op.
type MetricHooks struct {
	OnDispatch func(endpoint, outcome string, upstreamLatency time.Duration)
}

// DispatchService validates send requests and relays them to the SMS gateway.
// Each call is independent: the credential is read-only after construction
// and the one-time code never leaves the call that generated it.
type DispatchService struct {
	prov       provider.Provider
	gen        *otp.Generator
	credential string
	logger     *zap.Logger
	hooks      MetricHooks
}

func NewDispatchService(
	prov provider.Provider,
	gen *otp.Generator,
	credential string,
	logger *zap.Logger,
	hooks MetricHooks,
) *DispatchService {
	if hooks.OnDispatch == nil {
		hooks.OnDispatch = func(string, string, time.Duration) {}
	}
	return &DispatchService{
		prov:       prov,
		gen:        gen,
		credential: credential,
		logger:     logger,
		hooks:      hooks,
	}
}

// DispatchOTP generates a one-time code, embeds it into the message and relays
// it. On a 2xx gateway answer the code is added to the returned body under
// OTPField; any other status is passed through untouched.
func (s *DispatchService) DispatchOTP(ctx context.Context, req domain.SendOTPRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		s.hooks.OnDispatch(EndpointOTP, OutcomeInvalid, 0)
		return nil, err
	}
	if err := s.checkCredential(ctx, EndpointOTP); err != nil {
		return nil, err
	}

	code, err := s.gen.Generate()
	if err != nil {
		correlation.Logger(ctx, s.logger).Error("code generation failed", zap.Error(err))
		s.hooks.OnDispatch(EndpointOTP, OutcomeInternal, 0)
		return nil, fmt.Errorf("generate code: %w", err)
	}

	resp, err := s.relay(ctx, EndpointOTP, domain.OutboundMessage{
		Text:         domain.BuildOTPMessage(req.CustomMessage, code),
		PhoneNumbers: req.PhoneNumbers,
	})
	if err != nil {
		return nil, err
	}

	if resp.Success() {
		if resp.Body == nil {
			resp.Body = make(map[string]any, 1)
		}
		resp.Body[OTPField] = code
	}
	return &Result{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}

// DispatchPlainMessage relays a caller-supplied message without generating a code.
func (s *DispatchService) DispatchPlainMessage(ctx context.Context, req domain.SendSMSRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		s.hooks.OnDispatch(EndpointSMS, OutcomeInvalid, 0)
		return nil, err
	}
	if err := s.checkCredential(ctx, EndpointSMS); err != nil {
		return nil, err
	}

	resp, err := s.relay(ctx, EndpointSMS, domain.OutboundMessage{
		Text:         req.Message,
		PhoneNumbers: req.PhoneNumbers,
	})
	if err != nil {
		return nil, err
	}
	return &Result{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}

// ---- private helpers ----

func (s *DispatchService) checkCredential(ctx context.Context, endpoint string) error {
	if s.credential != "" {
		return nil
	}
	correlation.Logger(ctx, s.logger).Error("refusing to dispatch: gateway credentials missing", zap.String("endpoint", endpoint))
	s.hooks.OnDispatch(endpoint, OutcomeConfig, 0)
	return domain.ErrMissingCredential
}

// relay makes the single gateway attempt for a request.
func (s *DispatchService) relay(ctx context.Context, endpoint string, msg domain.OutboundMessage) (*provider.Response, error) {
	start := time.Now()
	resp, err := s.prov.Send(ctx, s.credential, msg)
	elapsed := time.Since(start)

	log := correlation.Logger(ctx, s.logger).With(
		zap.String("endpoint", endpoint),
		zap.Int("recipients", len(msg.PhoneNumbers)),
		zap.Duration("latency", elapsed),
	)

	if err != nil {
		log.Warn("gateway request failed", zap.Error(err))
		s.hooks.OnDispatch(endpoint, OutcomeUpstream, elapsed)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	if !resp.Success() {
		log.Warn("gateway rejected message", zap.Int("status", resp.StatusCode))
		s.hooks.OnDispatch(endpoint, OutcomeRejected, elapsed)
		return resp, nil
	}

	log.Info("message relayed", zap.Int("status", resp.StatusCode))
	s.hooks.OnDispatch(endpoint, OutcomeSent, elapsed)
	return resp, nil
}
