package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/fleet-dashboard/backend/internal/application/usecase/dataset"
	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
	"github.com/fleet-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/fleet-dashboard/backend/internal/integration/export"
)

type countingObserver struct {
	computes map[string]int
	exports  map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{computes: map[string]int{}, exports: map[string]int{}}
}

func (o *countingObserver) ObserveDashboardCompute(result string, _ time.Duration) {
	o.computes[result]++
}

func (o *countingObserver) IncExport(format, result string) {
	o.exports[format+"/"+result]++
}

func testBooking(id, date, branch, agent string, revenue int64) entity.Booking {
	return entity.Booking{
		ID:           valueobject.StringID(id),
		PickupDate:   date,
		BranchOffice: branch,
		Agent:        agent,
		Channel:      "Walk-in",
		Provider:     "Acme",
		Revenue:      valueobject.NewAmount(decimal.NewFromInt(revenue)),
		DurationDays: valueobject.NewDays(2),
	}
}

func setupDashboardRouter(store *dataset.Store, observer DashboardObserver) *gin.Engine {
	gin.SetMode(gin.TestMode)

	settings := dashboard.DefaultSettings()
	c := NewDashboardController(
		dashboard.NewGetDashboardUseCase(store, settings),
		dashboard.NewGetOptionsUseCase(store, settings),
		dashboard.NewGetStatusUseCase(store),
		observer,
	)

	engine := gin.New()
	group := engine.Group("/api/v1/dashboard")
	group.GET("", c.GetDashboard)
	group.GET("/status", c.GetStatus)
	group.GET("/options", c.GetOptions)
	group.GET("/export.xlsx", c.ExportXLSX)
	group.GET("/export.pdf", c.ExportPDF)
	return engine
}

func loadedStore() *dataset.Store {
	store := dataset.NewStore()
	store.Put(entity.NewDataset(
		[]entity.Booking{
			testBooking("1", "2025-12-05", "Milano", "Rossi", 50),
			testBooking("2", "2025-12-05", "Roma", "Bianchi", 70),
			testBooking("3", "2026-01-02", "Milano", "Verdi", 30),
		},
		[]entity.OccupationRecord{{BranchOffice: "Milano", Occupation: valueobject.NewRatio(0.5)}},
		[]entity.FleetUnit{{BranchOffice: "Milano", Provider: "Acme"}},
		[]entity.ServiceEvent{},
		[]entity.Incident{},
	))
	return store
}

func TestDashboardController_GetDashboard(t *testing.T) {
	observer := newCountingObserver()
	engine := setupDashboardRouter(loadedStore(), observer)

	tests := []struct {
		name             string
		query            string
		expectedStatus   int
		expectedBookings int
		expectedCode     string
	}{
		{name: "no filters", query: "", expectedStatus: http.StatusOK, expectedBookings: 3},
		{name: "date range", query: "?dates=2025-12-01&dates=2025-12-31", expectedStatus: http.StatusOK, expectedBookings: 2},
		{name: "branch filter", query: "?branch=Milano", expectedStatus: http.StatusOK, expectedBookings: 2},
		{name: "branch and agent", query: "?branch=Milano&agent=Verdi", expectedStatus: http.StatusOK, expectedBookings: 1},
		{name: "empty dates use the window", query: "?dates=&dates=", expectedStatus: http.StatusOK, expectedBookings: 3},
		{name: "empty start keeps the end", query: "?dates=&dates=2025-12-31", expectedStatus: http.StatusOK, expectedBookings: 2},
		{
			name:           "malformed date",
			query:          "?dates=05/12/2025",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   string(domainerror.ErrCodeInvalidDateFormat),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard"+tt.query, nil)

			engine.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedCode != "" {
				var errResp dto.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("failed to decode error: %v", err)
				}
				if errResp.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, errResp.Code)
				}
				return
			}

			var resp dto.DashboardResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Data.KPIs.BookingCount != tt.expectedBookings {
				t.Errorf("expected %d bookings, got %d", tt.expectedBookings, resp.Data.KPIs.BookingCount)
			}
			if len(resp.Data.MonthDaily.Labels) != 31 {
				t.Errorf("expected 31 month labels, got %d", len(resp.Data.MonthDaily.Labels))
			}
		})
	}

	if observer.computes[resultSuccess] != 6 {
		t.Errorf("expected 6 successful computes, got %d", observer.computes[resultSuccess])
	}
}

func TestDashboardController_NotLoaded(t *testing.T) {
	engine := setupDashboardRouter(dataset.NewStore(), nil)

	t.Run("dashboard is unavailable", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
		}
	})

	t.Run("status reports loading", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/status", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var resp dto.StatusResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Loaded || resp.Message != dashboard.StatusMessageLoading {
			t.Errorf("expected loading status, got %+v", resp)
		}
	})
}

func TestDashboardController_GetOptions(t *testing.T) {
	engine := setupDashboardRouter(loadedStore(), nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/options", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp dto.OptionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if strings.Join(resp.Branches, ",") != "Milano,Roma" {
		t.Errorf("expected Milano,Roma, got %v", resp.Branches)
	}
	if resp.Range.EndDate != valueobject.DefaultDateMax {
		t.Errorf("expected range end %s, got %s", valueobject.DefaultDateMax, resp.Range.EndDate)
	}
}

func TestDashboardController_Export(t *testing.T) {
	observer := newCountingObserver()
	engine := setupDashboardRouter(loadedStore(), observer)

	tests := []struct {
		name        string
		path        string
		contentType string
		format      string
	}{
		{name: "xlsx", path: "/api/v1/dashboard/export.xlsx", contentType: export.ContentTypeXLSX, format: export.FormatXLSX},
		{name: "pdf", path: "/api/v1/dashboard/export.pdf?branch=Milano", contentType: export.ContentTypePDF, format: export.FormatPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
			}
			if got := w.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("expected content type %s, got %s", tt.contentType, got)
			}
			if w.Body.Len() == 0 {
				t.Error("expected a non-empty body")
			}
			if observer.exports[tt.format+"/"+resultSuccess] != 1 {
				t.Errorf("expected one successful %s export, got %d", tt.format, observer.exports[tt.format+"/"+resultSuccess])
			}
		})
	}
}
