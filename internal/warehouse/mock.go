package warehouse

import (
	"context"
	"sort"
	"sync"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
)

// MockStore is an in-memory Warehouse for tests. It is safe for
// concurrent use so pipeline worker tests can share one instance.
type MockStore struct {
	mu          sync.Mutex
	years       map[string][]schema.CompanyYear
	assessments map[string][]schema.HealthAssessment
	snapshots   []schema.KPISnapshot

	// FailSaves forces every write to return this error when non-nil.
	FailSaves error
}

var _ contract.Warehouse = &MockStore{} // Compile-time check

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		years:       make(map[string][]schema.CompanyYear),
		assessments: make(map[string][]schema.HealthAssessment),
	}
}

// SaveCompanyYear records the company-year, replacing any row with the
// same fiscal year.
func (m *MockStore) SaveCompanyYear(_ context.Context, year schema.CompanyYear) error {
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.years[year.Ticker]
	for i, existing := range rows {
		if existing.FiscalYear == year.FiscalYear {
			rows[i] = year
			return nil
		}
	}
	m.years[year.Ticker] = append(rows, year)
	return nil
}

// SaveAssessment records the assessment and snapshot, replacing rows for
// the same company-year.
func (m *MockStore) SaveAssessment(_ context.Context, a schema.HealthAssessment, snap schema.KPISnapshot) error {
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.assessments[a.Ticker]
	replaced := false
	for i, existing := range rows {
		if existing.FiscalYear == a.FiscalYear {
			rows[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		m.assessments[a.Ticker] = append(rows, a)
	}

	for i, existing := range m.snapshots {
		if existing.Ticker == snap.Ticker && existing.FiscalYear == snap.FiscalYear {
			m.snapshots[i] = snap
			return nil
		}
	}
	m.snapshots = append(m.snapshots, snap)
	return nil
}

// LoadCompanyYears returns stored company-years ordered by fiscal year.
func (m *MockStore) LoadCompanyYears(_ context.Context, ticker string) ([]schema.CompanyYear, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := append([]schema.CompanyYear(nil), m.years[ticker]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].FiscalYear < rows[j].FiscalYear })
	return rows, nil
}

// LoadAssessments returns stored assessments ordered by fiscal year.
func (m *MockStore) LoadAssessments(_ context.Context, ticker string) ([]schema.HealthAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := append([]schema.HealthAssessment(nil), m.assessments[ticker]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].FiscalYear < rows[j].FiscalYear })
	return rows, nil
}

// LoadLatestAssessments returns the most recent fiscal year per ticker.
func (m *MockStore) LoadLatestAssessments(_ context.Context) ([]schema.HealthAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest []schema.HealthAssessment
	for _, rows := range m.assessments {
		best := rows[0]
		for _, a := range rows[1:] {
			if a.FiscalYear > best.FiscalYear {
				best = a
			}
		}
		latest = append(latest, best)
	}
	sort.Slice(latest, func(i, j int) bool { return latest[i].Ticker < latest[j].Ticker })
	return latest, nil
}

// LoadAllAssessments returns every stored assessment ordered by ticker
// then fiscal year.
func (m *MockStore) LoadAllAssessments(_ context.Context) ([]schema.HealthAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []schema.HealthAssessment
	for _, rows := range m.assessments {
		all = append(all, rows...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Ticker != all[j].Ticker {
			return all[i].Ticker < all[j].Ticker
		}
		return all[i].FiscalYear < all[j].FiscalYear
	})
	return all, nil
}

// LoadKPISnapshots returns stored snapshots ordered by ticker then
// fiscal year.
func (m *MockStore) LoadKPISnapshots(_ context.Context) ([]schema.KPISnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := append([]schema.KPISnapshot(nil), m.snapshots...)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Ticker != rows[j].Ticker {
			return rows[i].Ticker < rows[j].Ticker
		}
		return rows[i].FiscalYear < rows[j].FiscalYear
	})
	return rows, nil
}

// GetStatus reports row counts for the in-memory maps.
func (m *MockStore) GetStatus() (schema.WarehouseStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := schema.WarehouseStatus{Backend: schema.NoneBackend, Location: "memory"}
	for _, rows := range m.years {
		status.CompanyYears += len(rows)
	}
	for _, rows := range m.assessments {
		status.Assessments += len(rows)
	}
	status.Snapshots = len(m.snapshots)
	return status, nil
}

// Clear removes all stored rows.
func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.years = make(map[string][]schema.CompanyYear)
	m.assessments = make(map[string][]schema.HealthAssessment)
	m.snapshots = nil
	return nil
}

// Close is a no-op.
func (m *MockStore) Close() error { return nil }
