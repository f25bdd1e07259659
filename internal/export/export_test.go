package export

import (
	"bytes"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/common/expfmt"

	"github.com/inletpara/inletpara/internal/compute"
)

func sampleResults() []compute.Metrics {
	return []compute.Metrics{
		{
			Name:                           "Inlet 1",
			PressureRecovery:               0.93758,
			KineticEnergyEfficiency:        88.228,
			AdiabaticCompressionEfficiency: 47.262,
			DistortionIndex:                0.06316,
			ShockCompressionEfficiency:     95.671,
		},
		{Name: "Inlet 2", PressureRecovery: 0.90},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResults()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(&buf)
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}

	mf, ok := mfs["inlet_pressure_recovery"]
	if !ok {
		t.Fatal("inlet_pressure_recovery family missing")
	}
	if len(mf.GetMetric()) != 2 {
		t.Fatalf("got %d series, want 2", len(mf.GetMetric()))
	}

	m := mf.GetMetric()[0]
	if m.GetLabel()[0].GetName() != "name" || m.GetLabel()[0].GetValue() != "Inlet 1" {
		t.Errorf("label = %s=%s, want name=Inlet 1",
			m.GetLabel()[0].GetName(), m.GetLabel()[0].GetValue())
	}
	if v := m.GetGauge().GetValue(); math.Abs(v-0.93758) > 1e-9 {
		t.Errorf("gauge = %v, want 0.93758", v)
	}

	for _, name := range []string{
		"inlet_ke_efficiency_pct",
		"inlet_adiabatic_efficiency_pct",
		"inlet_distortion_index",
		"inlet_shock_efficiency_pct",
	} {
		if _, ok := mfs[name]; !ok {
			t.Errorf("family %s missing", name)
		}
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write with no results: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty result set produced output:\n%s", buf.String())
	}
}

func TestHandler(t *testing.T) {
	h := Handler(func() []compute.Metrics { return sampleResults() })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `inlet_shock_efficiency_pct{name="Inlet 1"}`) {
		t.Errorf("body missing labelled series:\n%s", rec.Body.String())
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := Handler(func() []compute.Metrics { return nil })
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
