package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"nbtech_pricing/internal/adapter/http/handlers/mocks"
	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReferenceRouter(uc usecase.IReferenceUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReferenceHandler(uc)
	r := gin.New()
	r.GET("/v1/reference/jurisdictions", h.ListJurisdictions)
	r.GET("/v1/reference/price-lists", h.PriceLists)
	r.GET("/v1/reference/tax-presets", h.TaxPresets)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestReferenceHandler_ListJurisdictions(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceUseCase(ctrl)
		r := newReferenceRouter(uc)

		uc.EXPECT().ListJurisdictions(gomock.Any(), "1999").Return(entities.JurisdictionTable{}, fmt.Errorf("%w: 1999", usecase.ErrTaxTableNotFound))

		w := get(r, "/v1/reference/jurisdictions?tax_year=1999")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceUseCase(ctrl)
		r := newReferenceRouter(uc)

		uc.EXPECT().ListJurisdictions(gomock.Any(), "").Return(entities.JurisdictionTable{
			TaxYear:       "2026",
			DefaultRate:   0.18,
			Jurisdictions: []entities.JurisdictionRate{{UF: entities.UFSP, InternalRate: 0.18, HighRateOrigin: true}},
		}, nil)

		w := get(r, "/v1/reference/jurisdictions")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			TaxYear       string `json:"tax_year"`
			Jurisdictions []struct {
				UF             string `json:"uf"`
				HighRateOrigin bool   `json:"high_rate_origin"`
			} `json:"jurisdictions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.TaxYear != "2026" || len(body.Jurisdictions) != 1 || body.Jurisdictions[0].UF != "SP" || !body.Jurisdictions[0].HighRateOrigin {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestReferenceHandler_StaticData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReferenceUseCase(ctrl)
	r := newReferenceRouter(uc)

	uc.EXPECT().PriceLists(gomock.Any()).Return(entities.OfficialPriceLists())
	uc.EXPECT().TaxPresets(gomock.Any()).Return(entities.TaxPresets{IPI: entities.IPIPresets, MVA: entities.MVAPresets})

	w := get(r, "/v1/reference/price-lists")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var lists struct {
		Version string `json:"version"`
		Lists   []struct {
			Key string `json:"key"`
		} `json:"lists"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &lists); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if lists.Version != entities.OfficialPriceListsVersion || len(lists.Lists) != 2 || lists.Lists[1].Key != "on_site" {
		t.Fatalf("unexpected price lists: %+v", lists)
	}

	w = get(r, "/v1/reference/tax-presets")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var presets struct {
		IPI []struct {
			Label string  `json:"label"`
			Rate  float64 `json:"rate"`
		} `json:"ipi"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &presets); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(presets.IPI) != 4 || presets.IPI[0].Label != "Nobreak" || presets.IPI[0].Rate != 0.0975 {
		t.Fatalf("unexpected presets: %+v", presets)
	}
}
