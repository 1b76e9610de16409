package server

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/openapi"
	"github.com/goliatone/go-enrollform/pkg/render"
)

const touchedKey = "touched"

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	ctrl := s.newController(nil, s.logger)
	s.writeForm(w, r, http.StatusOK, s.negotiate(r), ctrl.State())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "form.submit")
	defer span.End()

	id := s.newID()
	logger := s.logger.With(
		zap.String("submission_id", id),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
	span.SetAttributes(attribute.String("enrollform.submission_id", id))

	redirect := navigation.Redirect{Writer: w, Request: r}
	ctrl := s.newController(navigation.NavigatorFunc(func(ctx context.Context, target navigation.Target) error {
		logger.Info("submission accepted", zap.String("target", target.Path))
		return redirect.Navigate(ctx, target)
	}), logger)
	if err := applyValues(ctrl, r.PostForm); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	submitted, err := ctrl.Submit(ctx)
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("submission failed", zap.Error(err))
		s.observeSubmission("error")
		http.Error(w, "submission failed", http.StatusInternalServerError)
	case !submitted:
		invalid := ctrl.Errors()
		span.SetAttributes(attribute.Int("enrollform.invalid_fields", len(invalid)))
		span.SetStatus(codes.Ok, "rejected")
		logger.Debug("submission rejected", zap.Any("errors", invalid.Strings()))
		s.observeSubmission("rejected")
		s.writeForm(w, r, http.StatusUnprocessableEntity, s.page, ctrl.State())
	default:
		span.SetStatus(codes.Ok, "")
		s.observeSubmission("accepted")
	}
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed form body")
		return
	}

	ctrl := s.newController(nil, s.logger)
	if err := applyValues(ctrl, r.PostForm); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, name := range r.PostForm[touchedKey] {
		field, err := model.ParseField(name)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		_ = ctrl.SetFieldTouched(field)
	}

	writeJSON(w, http.StatusOK, ctrl.State())
}

func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if s.contract != nil {
		if err := s.contract.ValidateOperationQuery(openapi.ConfirmationOperationID, query); err != nil {
			s.logger.Debug("confirmation payload rejected", zap.Error(err))
			http.Error(w, "confirmation requires a submitted form", http.StatusBadRequest)
			return
		}
	}

	values := navigation.Decode(query)
	out, err := s.page.RenderSuccess(r.Context(), s.form, values, s.renderOptions(form.State{Values: values}))
	if err != nil {
		s.logger.Error("render confirmation", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", s.page.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) handleContract(w http.ResponseWriter, _ *http.Request) {
	payload, err := s.contract.JSON()
	if err != nil {
		s.logger.Error("encode contract", zap.Error(err))
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writeForm(w http.ResponseWriter, r *http.Request, status int, renderer render.Renderer, state form.State) {
	out, err := renderer.Render(r.Context(), s.form, s.renderOptions(state))
	if err != nil {
		s.logger.Error("render form", zap.String("renderer", renderer.Name()), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// negotiate picks a registered renderer whose content type appears in the
// Accept header, falling back to the HTML page.
func (s *Server) negotiate(r *http.Request) render.Renderer {
	if name := r.URL.Query().Get("renderer"); name != "" {
		if renderer, err := s.registry.Get(name); err == nil {
			return renderer
		}
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		for _, name := range s.registry.List() {
			renderer, _ := s.registry.Get(name)
			contentType, _, _ := mime.ParseMediaType(renderer.ContentType())
			if contentType == mediaType {
				return renderer
			}
		}
	}
	return s.page
}

// applyValues copies posted fields into the controller. Fields absent from
// the body keep their initial value, except terms: an unchecked checkbox is
// never posted.
func applyValues(ctrl *form.Controller, posted url.Values) error {
	for _, field := range model.Fields() {
		raw, ok := posted[field.String()]
		if !ok && field != model.FieldTerms {
			continue
		}
		var value any = raw
		if field != model.FieldTerms && len(raw) > 1 {
			value = raw[:1]
		}
		if err := ctrl.SetFieldValue(field, value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
