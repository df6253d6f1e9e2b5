// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wizard

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/stackforge/internal/project"
	"github.com/cloud-exit/stackforge/internal/provider"
)

const sidebarWidth = 24

// stepLabels are the sidebar labels. The create step is not listed; it is
// the commit point reached from review.
var stepLabels = map[StepID]string{
	StepAuth:              "Organization",
	StepProject:           "Project",
	StepEnvironment:       "Environment",
	StepComponents:        "Components",
	StepComponentSettings: "Settings",
	StepMesh:              "Mesh",
	StepReview:            "Review",
}

// Model is the root bubbletea model for the wizard. It owns the display
// state; all navigation goes through the controller so the navigation
// state is only ever changed by Apply.
type Model struct {
	ctrl        *Controller
	nav         State
	flavor      Flavor
	providers   provider.Providers
	projectName string

	// defaultOrg pre-positions the cursor on the auth step when no
	// organization has been chosen yet (configured default).
	defaultOrg string

	// decisions holds the committed per-step payloads. In edit mode it
	// starts as a copy of the record's decisions.
	decisions project.Decisions

	width     int
	height    int
	cancelled bool
	confirmed bool
	notice    string

	// Sidebar navigation
	sidebarFocused bool
	sidebarCursor  int

	// Generic list cursor for the current step
	cursor int

	// Async fetch state. fetchSeq tags in-flight fetches; results from a
	// superseded fetch are discarded, never committed.
	spin     spinner.Model
	loading  bool
	loadErr  string
	fetchSeq int

	orgs     []provider.Organization
	projects []provider.TargetProject
	envs     []provider.Environment
	mesh     *provider.MeshStatus

	// Components step
	components     []provider.Component
	compChecked    map[string]bool
	compFilter     textinput.Model
	compFilterMode bool

	// Component settings step (working copy, committed on enter)
	settings      map[string]project.ComponentSettings
	settingsOrder []string

	// Mesh step toggle
	meshEnabled bool

	// initCmd is the first step's fetch, prepared at construction so the
	// sequence tag in the model and the in-flight fetch agree.
	initCmd tea.Cmd
}

// NewModel creates a fresh wizard model.
func NewModel(name string, flavor Flavor, providers provider.Providers, ctrl *Controller) Model {
	filter := textinput.New()
	filter.Placeholder = "filter components"
	filter.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle

	m := Model{
		ctrl:        ctrl,
		nav:         NewState(ctrl.Catalog()),
		flavor:      flavor,
		providers:   providers,
		projectName: name,
		compChecked: make(map[string]bool),
		compFilter:  filter,
		spin:        sp,
		settings:    make(map[string]project.ComponentSettings),
	}
	m.initCmd = m.fetchForStep(m.nav.Current)
	return m
}

// NewModelFromRecord creates a wizard model for editing an existing
// record: navigation state comes from the edit-mode loader and the
// committed decisions are pre-populated from the record.
func NewModelFromRecord(rec *project.Record, providers provider.Providers, ctrl *Controller) Model {
	flavor := Flavor(rec.Flavor)
	m := NewModel(rec.Name, flavor, providers, ctrl)
	m.nav = LoadState(rec, ctrl.Catalog())
	m.decisions = rec.Decisions

	if rec.Decisions.Components != nil {
		for _, id := range rec.Decisions.Components.Components {
			m.compChecked[id] = true
		}
	}
	if rec.Decisions.ComponentSettings != nil {
		for id, cs := range rec.Decisions.ComponentSettings.Settings {
			m.settings[id] = cs
		}
	}
	if rec.Decisions.Mesh != nil {
		m.meshEnabled = rec.Decisions.Mesh.Enabled
	}
	m.initCmd = m.fetchForStep(m.nav.Current)
	return m
}

// Cancelled returns true if the operator cancelled the wizard.
func (m Model) Cancelled() bool { return m.cancelled }

// Confirmed returns true if the operator confirmed at the review step.
func (m Model) Confirmed() bool { return m.confirmed }

// Nav returns the navigation state snapshot.
func (m Model) Nav() State { return m.nav }

// Decisions returns the committed per-step payloads.
func (m Model) Decisions() project.Decisions { return m.decisions }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.initCmd)
}

// ---- async fetches ----------------------------------------------------

type orgsMsg struct {
	seq  int
	orgs []provider.Organization
	err  error
}

type projectsMsg struct {
	seq      int
	projects []provider.TargetProject
	err      error
}

type envsMsg struct {
	seq  int
	envs []provider.Environment
	err  error
}

type meshMsg struct {
	seq    int
	status provider.MeshStatus
	err    error
}

// fetchForStep returns the background fetch command a step needs, or nil.
// The fetch runs outside the controller; its result is consumed only if
// it is still current when it arrives.
func (m *Model) fetchForStep(step StepID) tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	m.loadErr = ""

	switch step {
	case StepAuth:
		m.loading = true
		identity := m.providers.Identity
		return func() tea.Msg {
			orgs, err := identity.Organizations(context.Background())
			return orgsMsg{seq: seq, orgs: orgs, err: err}
		}
	case StepProject:
		if m.decisions.Auth == nil {
			return nil
		}
		m.loading = true
		targets := m.providers.Targets
		org := m.decisions.Auth.Organization
		return func() tea.Msg {
			projects, err := targets.Projects(context.Background(), org)
			return projectsMsg{seq: seq, projects: projects, err: err}
		}
	case StepEnvironment:
		if m.decisions.Auth == nil || m.decisions.Project == nil {
			return nil
		}
		m.loading = true
		targets := m.providers.Targets
		org := m.decisions.Auth.Organization
		proj := m.decisions.Project.Project
		return func() tea.Msg {
			envs, err := targets.Environments(context.Background(), org, proj)
			return envsMsg{seq: seq, envs: envs, err: err}
		}
	case StepMesh:
		if m.decisions.Auth == nil || m.decisions.Environment == nil {
			return nil
		}
		m.loading = true
		mesh := m.providers.Mesh
		org := m.decisions.Auth.Organization
		env := m.decisions.Environment.Environment
		return func() tea.Msg {
			status, err := mesh.Status(context.Background(), org, env)
			return meshMsg{seq: seq, status: status, err: err}
		}
	case StepComponents:
		// Synchronous: the catalog is local.
		m.components = m.providers.Components.Components(string(m.flavor))
	}
	return nil
}

// enterStep positions display state for a newly current step and kicks
// off its fetch.
func (m Model) enterStep() (Model, tea.Cmd) {
	m.cursor = 0
	m.notice = ""
	m.loading = false
	m.compFilterMode = false
	step := m.nav.Current
	if step == StepComponentSettings {
		m.rebuildSettingsOrder()
	}
	cmd := m.fetchForStep(step)
	if cmd != nil {
		return m, tea.Batch(cmd, m.spin.Tick)
	}
	return m, nil
}

// rebuildSettingsOrder derives the settings-step rows from the committed
// component selection.
func (m *Model) rebuildSettingsOrder() {
	m.settingsOrder = nil
	if m.decisions.Components == nil {
		return
	}
	m.settingsOrder = append(m.settingsOrder, m.decisions.Components.Components...)
	sort.Strings(m.settingsOrder)
	if m.components == nil {
		m.components = m.providers.Components.Components(string(m.flavor))
	}
	for _, id := range m.settingsOrder {
		if _, ok := m.settings[id]; !ok {
			m.settings[id] = project.ComponentSettings{Plan: m.defaultPlan(id), Replicas: 1}
		}
	}
}

func (m Model) defaultPlan(componentID string) string {
	for _, c := range m.components {
		if c.ID == componentID && len(c.Plans) > 0 {
			return c.Plans[0]
		}
	}
	return ""
}

// ---- update -----------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case orgsMsg:
		if msg.seq != m.fetchSeq || m.nav.Current != StepAuth {
			return m, nil // stale fetch, discard
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.orgs = msg.orgs
		if m.decisions.Auth == nil && m.defaultOrg != "" {
			m.cursor = indexOfOrg(m.orgs, &project.AuthDecision{Organization: m.defaultOrg})
		} else {
			m.cursor = indexOfOrg(m.orgs, m.decisions.Auth)
		}
		return m, nil

	case projectsMsg:
		if msg.seq != m.fetchSeq || m.nav.Current != StepProject {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.projects = msg.projects
		m.cursor = indexOfProject(m.projects, m.decisions.Project)
		return m, nil

	case envsMsg:
		if msg.seq != m.fetchSeq || m.nav.Current != StepEnvironment {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.envs = msg.envs
		m.cursor = indexOfEnv(m.envs, m.decisions.Environment)
		return m, nil

	case meshMsg:
		if msg.seq != m.fetchSeq || m.nav.Current != StepMesh {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.mesh = &msg.status
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "tab":
		if m.compFilterMode {
			break
		}
		m.sidebarFocused = !m.sidebarFocused
		if m.sidebarFocused {
			for i, si := range m.sidebarSteps() {
				if si == m.nav.Current {
					m.sidebarCursor = i
					break
				}
			}
		}
		return m, nil
	}

	if m.sidebarFocused {
		return m.updateSidebar(msg)
	}

	switch m.nav.Current {
	case StepAuth:
		return m.updateAuth(msg)
	case StepProject:
		return m.updateProject(msg)
	case StepEnvironment:
		return m.updateEnvironment(msg)
	case StepComponents:
		return m.updateComponents(msg)
	case StepComponentSettings:
		return m.updateComponentSettings(msg)
	case StepMesh:
		return m.updateMesh(msg)
	case StepReview:
		return m.updateReview(msg)
	}
	return m, nil
}

// sidebarSteps lists the enabled steps shown in the sidebar.
func (m Model) sidebarSteps() []StepID {
	var out []StepID
	for _, def := range m.ctrl.Catalog().EnabledSteps() {
		if def.ID == StepCreate {
			continue
		}
		out = append(out, def.ID)
	}
	return out
}

// updateSidebar handles keys while the sidebar is focused.
func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	steps := m.sidebarSteps()
	switch msg.String() {
	case "up", "k":
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case "down", "j":
		if m.sidebarCursor < len(steps)-1 {
			m.sidebarCursor++
		}
	case "enter":
		target := steps[m.sidebarCursor]
		m.sidebarFocused = false
		if target == m.nav.Current {
			return m, nil
		}
		next := m.ctrl.Apply(m.nav, Jump{Target: target})
		if next.Current == m.nav.Current {
			// Rejected: unvisited step or gated review. The UI simply
			// does not move.
			if target == StepReview && m.nav.Invalidated.Len() > 0 {
				m.notice = "resolve the flagged steps before review"
			} else {
				m.notice = "step not reachable yet"
			}
			return m, nil
		}
		m.nav = next
		return m.enterStep()
	case "tab", "esc":
		m.sidebarFocused = false
	}
	return m, nil
}

// retreat moves back one step.
func (m Model) retreat() (tea.Model, tea.Cmd) {
	next := m.ctrl.Apply(m.nav, Retreat{})
	if next.Current == m.nav.Current {
		return m, nil
	}
	m.nav = next
	return m.enterStep()
}

// advance moves forward one step, surfacing the review gate as a notice.
func (m Model) advance() (tea.Model, tea.Cmd) {
	next := m.ctrl.Apply(m.nav, Advance{})
	if next.Current == m.nav.Current {
		if m.nav.Invalidated.Len() > 0 {
			m.notice = "resolve the flagged steps before review"
		}
		return m, nil
	}
	m.nav = next
	return m.enterStep()
}

// commitDecision records a step's payload, invalidating dependents when
// the payload differs from a previously committed one, then advances. A
// first-time commit is not a change: there was no prior decision to
// differ from.
func (m Model) commitDecision(step StepID, changed bool) (tea.Model, tea.Cmd) {
	if changed {
		m.nav = m.ctrl.Apply(m.nav, ChangeDecision{Step: step})
	}
	return m.advance()
}

// resolveCurrent explicitly re-confirms the current step without moving.
func (m Model) resolveCurrent() (tea.Model, tea.Cmd) {
	if !m.nav.Invalidated.Has(m.nav.Current) {
		return m, nil
	}
	m.nav = m.ctrl.Apply(m.nav, Resolve{Step: m.nav.Current})
	m.notice = ""
	return m, nil
}

// ---- auth step ----------------------------------------------------------

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.orgs)-1 {
			m.cursor++
		}
	case "c":
		return m.resolveCurrent()
	case "q":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		if m.loading || len(m.orgs) == 0 {
			return m, nil
		}
		org := m.orgs[m.cursor].ID
		prior := m.decisions.Auth
		changed := prior != nil && prior.Organization != org
		m.decisions.Auth = &project.AuthDecision{Organization: org}
		return m.commitDecision(StepAuth, changed)
	}
	return m, nil
}

func (m Model) viewAuth() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Organization") + "\n")
	b.WriteString(subtitleStyle.Render("The identity everything is provisioned under") + "\n\n")
	if m.loading {
		b.WriteString(m.spin.View() + " loading organizations...\n")
	} else if m.loadErr != "" {
		b.WriteString(errorStyle.Render("fetch failed: "+m.loadErr) + "\n")
	} else {
		for i, org := range m.orgs {
			line := fmt.Sprintf("%s (%s)", org.Name, org.ID)
			b.WriteString(m.renderListLine(line, i, m.isSelectedOrg(org.ID)) + "\n")
		}
	}
	b.WriteString(m.footerHelp("enter select"))
	return b.String()
}

func (m Model) isSelectedOrg(id string) bool {
	return m.decisions.Auth != nil && m.decisions.Auth.Organization == id
}

// ---- project step -------------------------------------------------------

func (m Model) updateProject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "c":
		return m.resolveCurrent()
	case "esc":
		return m.retreat()
	case "enter":
		if m.loading || len(m.projects) == 0 {
			return m, nil
		}
		proj := m.projects[m.cursor].ID
		prior := m.decisions.Project
		changed := prior != nil && prior.Project != proj
		m.decisions.Project = &project.ProjectDecision{Project: proj}
		return m.commitDecision(StepProject, changed)
	}
	return m, nil
}

func (m Model) viewProject() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Target Project") + "\n")
	b.WriteString(subtitleStyle.Render("Where the new components will live") + "\n\n")
	if m.loading {
		b.WriteString(m.spin.View() + " loading projects...\n")
	} else if m.loadErr != "" {
		b.WriteString(errorStyle.Render("fetch failed: "+m.loadErr) + "\n")
	} else {
		for i, p := range m.projects {
			selected := m.decisions.Project != nil && m.decisions.Project.Project == p.ID
			b.WriteString(m.renderListLine(p.Name, i, selected) + "\n")
		}
	}
	b.WriteString(m.footerHelp("enter select, esc back"))
	return b.String()
}

// ---- environment step -----------------------------------------------------

func (m Model) updateEnvironment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.envs)-1 {
			m.cursor++
		}
	case "c":
		return m.resolveCurrent()
	case "esc":
		return m.retreat()
	case "enter":
		if m.loading || len(m.envs) == 0 {
			return m, nil
		}
		env := m.envs[m.cursor].ID
		prior := m.decisions.Environment
		changed := prior != nil && prior.Environment != env
		m.decisions.Environment = &project.EnvironmentDecision{Environment: env}
		return m.commitDecision(StepEnvironment, changed)
	}
	return m, nil
}

func (m Model) viewEnvironment() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Environment") + "\n")
	b.WriteString(subtitleStyle.Render("Deployment target within the project") + "\n\n")
	if m.loading {
		b.WriteString(m.spin.View() + " loading environments...\n")
	} else if m.loadErr != "" {
		b.WriteString(errorStyle.Render("fetch failed: "+m.loadErr) + "\n")
	} else {
		for i, e := range m.envs {
			selected := m.decisions.Environment != nil && m.decisions.Environment.Environment == e.ID
			line := fmt.Sprintf("%s (%s)", e.Name, e.Region)
			b.WriteString(m.renderListLine(line, i, selected) + "\n")
		}
	}
	b.WriteString(m.footerHelp("enter select, esc back"))
	return b.String()
}

// ---- components step -------------------------------------------------------

// filteredComponents applies the textinput filter to the catalog.
func (m Model) filteredComponents() []provider.Component {
	query := strings.ToLower(strings.TrimSpace(m.compFilter.Value()))
	if query == "" {
		return m.components
	}
	var out []provider.Component
	for _, c := range m.components {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.ID), query) {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) updateComponents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.compFilterMode {
		switch msg.String() {
		case "enter", "esc":
			m.compFilterMode = false
			m.compFilter.Blur()
			m.cursor = 0
			return m, nil
		default:
			var cmd tea.Cmd
			m.compFilter, cmd = m.compFilter.Update(msg)
			m.cursor = 0
			return m, cmd
		}
	}

	visible := m.filteredComponents()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "/":
		m.compFilterMode = true
		return m, m.compFilter.Focus()
	case " ", "x":
		if len(visible) > 0 {
			id := visible[m.cursor].ID
			m.compChecked[id] = !m.compChecked[id]
		}
	case "c":
		return m.resolveCurrent()
	case "esc":
		return m.retreat()
	case "enter":
		selected := m.checkedComponents()
		if len(selected) == 0 {
			m.notice = "select at least one component"
			return m, nil
		}
		prior := m.decisions.Components
		changed := prior != nil && !sameStrings(prior.Components, selected)
		m.decisions.Components = &project.ComponentsDecision{Components: selected}
		m.pruneSettings(selected)
		return m.commitDecision(StepComponents, changed)
	}
	return m, nil
}

// checkedComponents returns the checked ids in catalog order.
func (m Model) checkedComponents() []string {
	var out []string
	for _, c := range m.components {
		if m.compChecked[c.ID] {
			out = append(out, c.ID)
		}
	}
	return out
}

// pruneSettings drops working settings for deselected components.
func (m *Model) pruneSettings(selected []string) {
	keep := make(map[string]bool, len(selected))
	for _, id := range selected {
		keep[id] = true
	}
	for id := range m.settings {
		if !keep[id] {
			delete(m.settings, id)
		}
	}
}

func (m Model) viewComponents() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Components") + "\n")
	b.WriteString(subtitleStyle.Render("Building blocks to provision") + "\n\n")
	if m.compFilterMode || m.compFilter.Value() != "" {
		b.WriteString("  " + m.compFilter.View() + "\n\n")
	}
	for i, c := range m.filteredComponents() {
		check := "[ ]"
		if m.compChecked[c.ID] {
			check = selectedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s - %s", check, c.Name, c.Description)
		b.WriteString(m.renderListLine(line, i, false) + "\n")
	}
	b.WriteString(m.footerHelp("space toggle, / filter, enter continue, esc back"))
	return b.String()
}

// ---- component settings step ------------------------------------------------

func (m Model) updateComponentSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.settingsOrder)-1 {
			m.cursor++
		}
	case "left", "h", "right", "l":
		if len(m.settingsOrder) == 0 {
			return m, nil
		}
		id := m.settingsOrder[m.cursor]
		cs := m.settings[id]
		cs.Plan = m.cyclePlan(id, cs.Plan, msg.String() == "right" || msg.String() == "l")
		m.settings[id] = cs
	case "+", "=":
		if len(m.settingsOrder) > 0 {
			id := m.settingsOrder[m.cursor]
			cs := m.settings[id]
			cs.Replicas++
			m.settings[id] = cs
		}
	case "-":
		if len(m.settingsOrder) > 0 {
			id := m.settingsOrder[m.cursor]
			cs := m.settings[id]
			if cs.Replicas > 1 {
				cs.Replicas--
			}
			m.settings[id] = cs
		}
	case "c":
		return m.resolveCurrent()
	case "esc":
		return m.retreat()
	case "enter":
		committed := make(map[string]project.ComponentSettings, len(m.settings))
		for id, cs := range m.settings {
			committed[id] = cs
		}
		prior := m.decisions.ComponentSettings
		changed := prior != nil && !sameSettings(prior.Settings, committed)
		m.decisions.ComponentSettings = &project.ComponentSettingsDecision{Settings: committed}
		return m.commitDecision(StepComponentSettings, changed)
	}
	return m, nil
}

// cyclePlan steps through a component's plan list.
func (m Model) cyclePlan(componentID, current string, forward bool) string {
	var plans []string
	for _, c := range m.components {
		if c.ID == componentID {
			plans = c.Plans
			break
		}
	}
	if len(plans) == 0 {
		return current
	}
	idx := 0
	for i, p := range plans {
		if p == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(plans)
	} else {
		idx = (idx - 1 + len(plans)) % len(plans)
	}
	return plans[idx]
}

func (m Model) viewComponentSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Component Settings") + "\n")
	b.WriteString(subtitleStyle.Render("Plan and scale per component") + "\n\n")
	if len(m.settingsOrder) == 0 {
		b.WriteString(dimStyle.Render("  no components selected") + "\n")
	}
	for i, id := range m.settingsOrder {
		cs := m.settings[id]
		line := fmt.Sprintf("%-12s plan: %-10s replicas: %d", id, cs.Plan, cs.Replicas)
		b.WriteString(m.renderListLine(line, i, false) + "\n")
	}
	b.WriteString(m.footerHelp("h/l plan, +/- replicas, enter continue, esc back"))
	return b.String()
}

// ---- mesh step ---------------------------------------------------------------

func (m Model) updateMesh(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "x":
		m.meshEnabled = !m.meshEnabled
	case "c":
		return m.resolveCurrent()
	case "esc":
		return m.retreat()
	case "enter":
		if m.loading {
			return m, nil
		}
		prior := m.decisions.Mesh
		changed := prior != nil && prior.Enabled != m.meshEnabled
		m.decisions.Mesh = &project.MeshDecision{Enabled: m.meshEnabled}
		return m.commitDecision(StepMesh, changed)
	}
	return m, nil
}

func (m Model) viewMesh() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Service Mesh") + "\n")
	b.WriteString(subtitleStyle.Render("Join the environment's mesh") + "\n\n")
	if m.loading {
		b.WriteString(m.spin.View() + " checking mesh status...\n")
	} else if m.loadErr != "" {
		b.WriteString(errorStyle.Render("fetch failed: "+m.loadErr) + "\n")
	} else if m.mesh != nil {
		if m.mesh.Available {
			b.WriteString(fmt.Sprintf("  mesh %s available, %d nodes\n\n", m.mesh.Version, m.mesh.Nodes))
		} else {
			b.WriteString(warnStyle.Render("  no mesh in this environment") + "\n\n")
		}
	}
	check := "[ ]"
	if m.meshEnabled {
		check = selectedStyle.Render("[x]")
	}
	b.WriteString(fmt.Sprintf("  %s join service mesh\n", check))
	b.WriteString(m.footerHelp("space toggle, enter continue, esc back"))
	return b.String()
}

// ---- review step ---------------------------------------------------------------

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.confirmed = true
		m.nav = m.ctrl.Apply(m.nav, Advance{})
		return m, tea.Quit
	case "esc":
		return m.retreat()
	case "q", "n":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewReview() string {
	var b strings.Builder
	title := "Review & Create"
	if m.nav.EditMode {
		title = "Review & Save"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(fmt.Sprintf("  Name:         %s\n", m.projectName))
	b.WriteString(fmt.Sprintf("  Flavor:       %s\n", m.flavor))
	if m.decisions.Auth != nil {
		b.WriteString(fmt.Sprintf("  Organization: %s\n", m.decisions.Auth.Organization))
	}
	if m.decisions.Project != nil {
		b.WriteString(fmt.Sprintf("  Project:      %s\n", m.decisions.Project.Project))
	}
	if m.decisions.Environment != nil {
		b.WriteString(fmt.Sprintf("  Environment:  %s\n", m.decisions.Environment.Environment))
	}
	if m.decisions.Components != nil {
		b.WriteString(fmt.Sprintf("  Components:   %s\n", strings.Join(m.decisions.Components.Components, ", ")))
	}
	if m.decisions.Mesh != nil && m.decisions.Mesh.Enabled {
		b.WriteString("  Mesh:         enabled\n")
	}
	b.WriteString("\n" + successStyle.Render("  Press enter to confirm") + "\n")
	b.WriteString(m.footerHelp("y/enter confirm, esc back, n/q cancel"))
	return b.String()
}

// ---- rendering -----------------------------------------------------------------

func (m Model) View() string {
	var content string
	switch m.nav.Current {
	case StepAuth:
		content = m.viewAuth()
	case StepProject:
		content = m.viewProject()
	case StepEnvironment:
		content = m.viewEnvironment()
	case StepComponents:
		content = m.viewComponents()
	case StepComponentSettings:
		content = m.viewComponentSettings()
	case StepMesh:
		content = m.viewMesh()
	case StepReview:
		content = m.viewReview()
	default:
		return ""
	}
	sidebar := m.renderSidebar()
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " "+content)
}

// renderListLine renders one selectable row with cursor and selection
// markers.
func (m Model) renderListLine(line string, idx int, selected bool) string {
	prefix := "  "
	if idx == m.cursor && !m.sidebarFocused {
		prefix = cursorStyle.Render("> ")
	}
	if selected {
		line += selectedStyle.Render(" (current)")
	}
	return prefix + line
}

// footerHelp renders the per-step key help, the re-confirm hint for an
// invalidated current step, and any pending notice.
func (m Model) footerHelp(keys string) string {
	help := keys + ", tab sidebar, ctrl+c quit"
	if m.nav.Invalidated.Has(m.nav.Current) {
		help = "c re-confirm, " + help
	}
	out := helpStyle.Render(help)
	if m.nav.Invalidated.Has(m.nav.Current) {
		out = "\n" + warnStyle.Render("  this step must be re-confirmed") + out
	}
	if m.notice != "" {
		out += "\n" + warnStyle.Render("  "+m.notice)
	}
	return out
}

// renderSidebar returns the navigation panel. Markers: ">>" current, "!"
// invalidated, "*" re-confirmed (edit mode), a check for completed.
func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString("\n")

	for i, id := range m.sidebarSteps() {
		prefix := "  "
		if m.sidebarFocused && m.sidebarCursor == i {
			prefix = cursorStyle.Render("> ")
		}

		label := fmt.Sprintf("%d. %s", i+1, stepLabels[id])
		var line string
		switch m.nav.StatusOf(id) {
		case StatusCurrent:
			line = prefix + sidebarActiveStyle.Render(">> "+label)
		case StatusInvalidated:
			line = prefix + sidebarInvalidStyle.Render(label+" !")
		case StatusConfirmed:
			line = prefix + sidebarVisitedStyle.Render(label+" *")
		case StatusCompleted:
			line = prefix + sidebarVisitedStyle.Render(label+" ✓")
		default:
			line = prefix + dimStyle.Render(label)
		}
		b.WriteString(line + "\n")
	}

	style := sidebarStyle
	if m.sidebarFocused {
		style = sidebarFocusedStyle
	}
	return style.Render(b.String())
}

// ---- helpers ---------------------------------------------------------------------

func indexOfOrg(orgs []provider.Organization, d *project.AuthDecision) int {
	if d == nil {
		return 0
	}
	for i, o := range orgs {
		if o.ID == d.Organization {
			return i
		}
	}
	return 0
}

func indexOfProject(projects []provider.TargetProject, d *project.ProjectDecision) int {
	if d == nil {
		return 0
	}
	for i, p := range projects {
		if p.ID == d.Project {
			return i
		}
	}
	return 0
}

func indexOfEnv(envs []provider.Environment, d *project.EnvironmentDecision) int {
	if d == nil {
		return 0
	}
	for i, e := range envs {
		if e.ID == d.Environment {
			return i
		}
	}
	return 0
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameSettings(a, b map[string]project.ComponentSettings) bool {
	if len(a) != len(b) {
		return false
	}
	for id, cs := range a {
		if other, ok := b[id]; !ok || other != cs {
			return false
		}
	}
	return true
}
