package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"unimarket/internal/adapter/http/handlers/mocks"
	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSizeHandler_ListSizes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISizeUseCase(ctrl)
		h := NewSizeHandler(uc)

		r := gin.New()
		r.GET("/v1/sizes", h.ListSizes)

		uc.EXPECT().ListSizes(gomock.Any()).Return([]usecase.SizeWithScale{
			{
				SizeSpec: entities.SizeSpec{
					Gender:      "unisex",
					GarmentType: "shirt",
					Label:       "M",
					MinHeight:   160,
					MaxHeight:   180,
				},
				LogoScale: 1.0,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sizes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["label"] != "M" || body[0]["logo_scale"] != 1.0 {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISizeUseCase(ctrl)
		h := NewSizeHandler(uc)

		r := gin.New()
		r.GET("/v1/sizes", h.ListSizes)

		uc.EXPECT().ListSizes(gomock.Any()).Return(nil, errors.New("size service down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/sizes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
