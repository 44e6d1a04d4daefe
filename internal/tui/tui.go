package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sevanear/internal/app"
	"sevanear/internal/domain"
	"sevanear/internal/domain/types"
	"sevanear/internal/nav"
	"sevanear/internal/services/browser"
	"sevanear/internal/services/submission"
	"sevanear/internal/state"
)

// MapRecorder implements domain.MapView by remembering the last coordinate
// the detail flow centered on; the detail page prints it in place of tiles.
type MapRecorder struct {
	mu   sync.Mutex
	at   domain.Coordinate
	seen bool
}

// NewMapRecorder returns an empty recorder.
func NewMapRecorder() *MapRecorder { return &MapRecorder{} }

// CenterOn records the coordinate.
func (r *MapRecorder) CenterOn(at domain.Coordinate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.at, r.seen = at, true
}

// Last returns the recorded coordinate, if any.
func (r *MapRecorder) Last() (domain.Coordinate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.at, r.seen
}

// Model is the terminal rendition of the four-page UI. The navigator owns
// which page is visible; the model owns cursors, the add-service form, and
// the transient status line.
type Model struct {
	store       *state.Store
	nav         *nav.Navigator
	browser     *browser.Service
	submissions *submission.Service
	locator     domain.Locator
	maps        *MapRecorder
	log         *zap.Logger

	hospitals    []domain.Hospital
	serviceTypes []domain.ServiceType
	services     []domain.Service

	hospitalIdx int // cursor into hospitals
	typeIdx     int // 0 = all categories, else serviceTypes[typeIdx-1]
	listIdx     int

	form    submission.Form
	formIdx int

	status string
	busy   bool
	width  int
}

// New builds the model over an assembled dependency graph.
func New(w *app.Wire, maps *MapRecorder) Model {
	return Model{
		store:       w.Store,
		nav:         w.Nav,
		browser:     w.Browser,
		submissions: w.Submissions,
		locator:     w.Locator,
		maps:        maps,
		log:         w.Log,
	}
}

type catalogMsg struct{ err error }
type listMsg struct{ err error }
type detailMsg struct{ err error }
type locateMsg struct{ at domain.Coordinate }
type submitMsg struct {
	ack domain.CreateAck
	err error
}

// Init triggers the initial catalog load.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return catalogMsg{err: m.browser.LoadCatalog(context.Background())}
	}
}

// Update is the single event loop: key handling routes by the navigator's
// current page, fetch results land as messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case catalogMsg:
		if msg.err != nil {
			m.status = "Failed to load data: " + msg.err.Error()
			return m, nil
		}
		m.hospitals = m.store.Hospitals()
		m.serviceTypes = m.store.ServiceTypes()
		return m, nil

	case listMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrHospitalRequired) {
				m.status = "Please select a hospital"
			} else {
				m.status = "Failed to load services: " + msg.err.Error()
			}
			return m, nil
		}
		m.status = ""
		m.services = m.store.Services()
		m.listIdx = 0
		return m, nil

	case detailMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Failed to load service details: " + msg.err.Error()
			return m, nil
		}
		m.status = ""
		return m, nil

	case locateMsg:
		m.form.Latitude = fmt.Sprintf("%.4f", msg.at.Latitude)
		m.form.Longitude = fmt.Sprintf("%.4f", msg.at.Longitude)
		m.status = fmt.Sprintf("Location captured: %s, %s", m.form.Latitude, m.form.Longitude)
		return m, nil

	case submitMsg:
		m.busy = false
		if msg.err != nil {
			// Form stays filled so the user can retry with the same values.
			m.status = "Failed to add service: " + msg.err.Error()
			return m, nil
		}
		m.form = submission.Form{}
		m.formIdx = 0
		m.status = "Service added successfully. Thank you for helping your community."
		m.nav.Home()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// The hardware/gesture back signal: unhandled on home means the
		// host shell (this program) exits.
		if !m.nav.Back() {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.nav.Current() {
	case types.PageHome:
		return m.updateHome(msg)
	case types.PageServiceList:
		return m.updateList(msg)
	case types.PageServiceDetail:
		return m.updateDetail(msg)
	case types.PageAddService:
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.hospitalIdx > 0 {
			m.hospitalIdx--
		}
	case "down":
		if m.hospitalIdx < len(m.hospitals)-1 {
			m.hospitalIdx++
		}
	case "left":
		if m.typeIdx > 0 {
			m.typeIdx--
		}
	case "right":
		if m.typeIdx < len(m.serviceTypes) {
			m.typeIdx++
		}
	case "a":
		m.status = ""
		m.nav.Push(types.PageAddService)
	case "n":
		m.busy = true
		return m, m.nearbyCmd()
	case "enter":
		m.busy = true
		return m, m.searchCmd()
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.listIdx > 0 {
			m.listIdx--
		}
	case "down":
		if m.listIdx < len(m.services)-1 {
			m.listIdx++
		}
	case "enter":
		if len(m.services) == 0 {
			return m, nil
		}
		m.busy = true
		return m, m.detailCmd(m.services[m.listIdx].ID)
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	svc, ok := m.store.Current()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "c":
		m.status = "Call: " + browser.CallLink(svc)
	case "d":
		m.status = "Directions: " + browser.DirectionsLink(svc)
	}
	return m, nil
}

func (m Model) searchCmd() tea.Cmd {
	hospital := m.selectedHospitalID()
	serviceType := m.selectedTypeID()
	return func() tea.Msg {
		return listMsg{err: m.browser.Search(context.Background(), hospital, serviceType)}
	}
}

func (m Model) nearbyCmd() tea.Cmd {
	return func() tea.Msg {
		return listMsg{err: m.browser.FindNearby(context.Background())}
	}
}

func (m Model) detailCmd(id domain.ServiceID) tea.Cmd {
	return func() tea.Msg {
		return detailMsg{err: m.browser.ViewDetail(context.Background(), id)}
	}
}

func (m Model) selectedHospitalID() domain.HospitalID {
	if len(m.hospitals) == 0 {
		return ""
	}
	return m.hospitals[m.hospitalIdx].ID
}

func (m Model) selectedTypeID() domain.ServiceTypeID {
	if m.typeIdx == 0 || m.typeIdx > len(m.serviceTypes) {
		return 0
	}
	return m.serviceTypes[m.typeIdx-1].ID
}
