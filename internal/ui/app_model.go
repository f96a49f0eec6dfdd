package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/todoflow/todoflow/internal/application"
	"github.com/todoflow/todoflow/internal/domain"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputTaskForm
	inputAddTag
	inputRemoveTag
	inputShare
	inputUnshare
)

type taskFormMode int

const (
	taskFormCreate taskFormMode = iota
	taskFormEdit
)

const (
	taskFormStepTitle = iota
	taskFormStepDescription
	taskFormStepPriority
	taskFormStepDueDate
	taskFormStepTags
	taskFormSteps = 5
)

type taskForm struct {
	mode        taskFormMode
	taskID      string
	step        int
	title       string
	description string
	priority    string
	dueDate     string
	tags        string
}

type collectionLoadedMsg struct {
	tasks []domain.Task
	err   error
}

type collectionSavedMsg struct {
	tasks  []domain.Task
	status string
	err    error
}

type Model struct {
	store     *application.StoreService
	lifecycle *application.LifecycleService
	engine    *application.QueryEngine

	user      domain.User
	shareBase string

	collection []domain.Task
	view       []domain.Task
	stats      application.Stats
	spec       domain.FilterSpec

	selected    int
	showDetails bool
	inputMode   inputMode
	taskForm    *taskForm

	textInput textinput.Model

	statusLine string
	err        error

	width  int
	height int

	keys       keyMap
	dateFormat userDateFormat
}

func NewModel(store *application.StoreService, lifecycle *application.LifecycleService, engine *application.QueryEngine, user domain.User, shareBase string) Model {
	ti := textinput.New()
	ti.Placeholder = "Type..."
	ti.CharLimit = 512
	ti.Prompt = "> "

	return Model{
		store:       store,
		lifecycle:   lifecycle,
		engine:      engine,
		user:        user,
		shareBase:   shareBase,
		spec:        domain.DefaultFilterSpec(),
		showDetails: true,
		textInput:   ti,
		keys:        newKeyMap(),
		dateFormat:  detectUserDateFormat(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCollectionCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		return m.updateInputMode(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case collectionLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.statusLine = msg.err.Error()
			return m, nil
		}
		m.collection = msg.tasks
		m.refreshView()
		return m, nil
	case collectionSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.statusLine = msg.err.Error()
			return m, nil
		}
		m.collection = msg.tasks
		m.statusLine = msg.status
		m.refreshView()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.selected--
			m.ensureSelection()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.selected++
			m.ensureSelection()
			return m, nil
		case key.Matches(msg, m.keys.ToggleDetails):
			m.showDetails = !m.showDetails
			return m, nil
		case key.Matches(msg, m.keys.NewTask):
			m.startCreateTaskForm()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.EditTask):
			task, ok := m.currentTask()
			if !ok {
				return m, nil
			}
			m.startEditTaskForm(task)
			return m, textinput.Blink
		case key.Matches(msg, m.keys.DeleteTask):
			task, ok := m.currentTask()
			if !ok {
				return m, nil
			}
			return m, m.deleteTaskCmd(task.ID)
		case key.Matches(msg, m.keys.CycleStatus):
			task, ok := m.currentTask()
			if !ok {
				return m, nil
			}
			next := nextStatus(task.Status)
			return m, m.updateTaskCmd(task.ID, application.UpdateCommand{Status: &next}, "moved to "+string(next))
		case key.Matches(msg, m.keys.Search):
			m.startPrompt(inputSearch, m.spec.Search, "Search title, description, tags", "Search")
			return m, textinput.Blink
		case key.Matches(msg, m.keys.ClearSearch):
			if strings.TrimSpace(m.spec.Search) == "" {
				return m, nil
			}
			m.spec.Search = ""
			m.statusLine = ""
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.StatusFilter):
			m.spec.Status = nextStatusFilter(m.spec.Status)
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.PriorityFilter):
			m.spec.Priority = nextPriorityFilter(m.spec.Priority)
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.SortKey):
			m.spec.SortBy = nextSortKey(m.spec.SortBy)
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.SortOrder):
			if m.spec.SortOrder == domain.SortAsc {
				m.spec.SortOrder = domain.SortDesc
			} else {
				m.spec.SortOrder = domain.SortAsc
			}
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.AddTag):
			if _, ok := m.currentTask(); !ok {
				return m, nil
			}
			m.startPrompt(inputAddTag, "", "Tag", "Add tag")
			return m, textinput.Blink
		case key.Matches(msg, m.keys.RemoveTag):
			if _, ok := m.currentTask(); !ok {
				return m, nil
			}
			m.startPrompt(inputRemoveTag, "", "Tag to remove", "Remove tag")
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Share):
			if _, ok := m.currentTask(); !ok {
				return m, nil
			}
			m.startPrompt(inputShare, "", "Collaborator email", "Share task")
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Unshare):
			if _, ok := m.currentTask(); !ok {
				return m, nil
			}
			m.startPrompt(inputUnshare, "", "Collaborator email to remove", "Remove collaborator")
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m Model) updateInputMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	mode := m.inputMode
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.inputMode = inputNone
			m.taskForm = nil
			m.textInput.Blur()
			m.statusLine = ""
			return m, nil
		case key.Matches(keyMsg, m.keys.Confirm) && mode == inputTaskForm:
			return m.submitOrAdvanceTaskForm()
		case key.Matches(keyMsg, m.keys.Confirm):
			value := strings.TrimSpace(m.textInput.Value())
			m.inputMode = inputNone
			m.textInput.Blur()
			switch mode {
			case inputSearch:
				m.spec.Search = value
				m.statusLine = ""
				m.refreshView()
				return m, nil
			case inputAddTag, inputRemoveTag, inputShare, inputUnshare:
				task, ok := m.currentTask()
				if !ok {
					return m, nil
				}
				if value == "" {
					m.statusLine = "nothing entered"
					return m, nil
				}
				return m, m.collaborationCmd(mode, task, value)
			}
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.inputMode = mode
	return m, cmd
}

func (m *Model) startPrompt(mode inputMode, value, placeholder, status string) {
	m.inputMode = mode
	m.textInput.SetValue(value)
	m.textInput.Placeholder = placeholder
	m.textInput.Focus()
	m.statusLine = status
}

func (m *Model) startCreateTaskForm() {
	m.taskForm = &taskForm{
		mode:     taskFormCreate,
		step:     taskFormStepTitle,
		priority: string(domain.PriorityMedium),
	}
	m.inputMode = inputTaskForm
	m.loadCurrentTaskFormStep()
	m.textInput.Focus()
}

func (m *Model) startEditTaskForm(task domain.Task) {
	m.taskForm = &taskForm{
		mode:        taskFormEdit,
		taskID:      task.ID,
		step:        taskFormStepTitle,
		title:       task.Title,
		description: task.Description,
		priority:    string(task.Priority),
		dueDate:     task.DueDate,
		tags:        strings.Join(task.Tags, ", "),
	}
	m.inputMode = inputTaskForm
	m.loadCurrentTaskFormStep()
	m.textInput.Focus()
}

func (m Model) submitOrAdvanceTaskForm() (tea.Model, tea.Cmd) {
	if m.taskForm == nil {
		m.inputMode = inputNone
		return m, nil
	}

	value := strings.TrimSpace(m.textInput.Value())
	switch m.taskForm.step {
	case taskFormStepTitle:
		m.taskForm.title = value
	case taskFormStepDescription:
		m.taskForm.description = value
	case taskFormStepPriority:
		m.taskForm.priority = value
	case taskFormStepDueDate:
		m.taskForm.dueDate = value
	case taskFormStepTags:
		m.taskForm.tags = value
	}

	if m.taskForm.step < taskFormSteps-1 {
		m.taskForm.step++
		m.loadCurrentTaskFormStep()
		m.textInput.Focus()
		return m, textinput.Blink
	}

	cmd, err := m.submitTaskFormCmd()
	if err != nil {
		m.loadCurrentTaskFormStep()
		m.statusLine = err.Error()
		m.textInput.Focus()
		return m, textinput.Blink
	}

	m.inputMode = inputNone
	m.taskForm = nil
	m.textInput.Blur()
	return m, cmd
}

func (m *Model) loadCurrentTaskFormStep() {
	if m.taskForm == nil {
		return
	}

	modeLabel := "Create"
	if m.taskForm.mode == taskFormEdit {
		modeLabel = "Edit"
	}

	suffix := fmt.Sprintf("%s task (%d/%d) - ", modeLabel, m.taskForm.step+1, taskFormSteps)
	switch m.taskForm.step {
	case taskFormStepTitle:
		m.textInput.Placeholder = "Title"
		m.textInput.SetValue(m.taskForm.title)
		m.statusLine = suffix + "title"
	case taskFormStepDescription:
		m.textInput.Placeholder = "Description"
		m.textInput.SetValue(m.taskForm.description)
		m.statusLine = suffix + "description"
	case taskFormStepPriority:
		m.textInput.Placeholder = "Priority (low|medium|high)"
		m.textInput.SetValue(m.taskForm.priority)
		m.statusLine = suffix + "priority"
	case taskFormStepDueDate:
		m.textInput.Placeholder = m.dueDatePlaceholder()
		m.textInput.SetValue(m.taskForm.dueDate)
		m.statusLine = suffix + "due date (optional)"
	case taskFormStepTags:
		m.textInput.Placeholder = "Tags (comma separated)"
		m.textInput.SetValue(m.taskForm.tags)
		m.statusLine = suffix + "tags"
	}
}

func (m Model) submitTaskFormCmd() (tea.Cmd, error) {
	if m.taskForm == nil {
		return nil, fmt.Errorf("task form is not active")
	}

	title := strings.TrimSpace(m.taskForm.title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	priority := domain.Priority(strings.ToLower(strings.TrimSpace(m.taskForm.priority)))
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("priority must be low, medium, or high")
	}

	dueDate, err := m.parseDueDateInput(m.taskForm.dueDate)
	if err != nil {
		return nil, err
	}

	tags := splitTags(m.taskForm.tags)
	description := m.taskForm.description

	if m.taskForm.mode == taskFormCreate {
		return m.createTaskCmd(application.CreateTaskInput{
			Title:       title,
			Description: description,
			Priority:    priority,
			DueDate:     dueDate,
			Tags:        tags,
		}), nil
	}

	return m.updateTaskCmd(m.taskForm.taskID, application.UpdateCommand{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		DueDate:     &dueDate,
		Tags:        &tags,
	}, "task updated"), nil
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (m Model) createTaskCmd(input application.CreateTaskInput) tea.Cmd {
	store := m.store
	lifecycle := m.lifecycle
	collection := m.collection
	userID := m.user.ID
	return func() tea.Msg {
		updated, _, err := lifecycle.Create(collection, input, userID)
		if err != nil {
			return collectionSavedMsg{err: err}
		}
		if err := store.Save(context.Background(), userID, updated); err != nil {
			return collectionSavedMsg{err: err}
		}
		return collectionSavedMsg{tasks: updated, status: "task created"}
	}
}

func (m Model) updateTaskCmd(taskID string, cmd application.UpdateCommand, status string) tea.Cmd {
	store := m.store
	lifecycle := m.lifecycle
	collection := m.collection
	userID := m.user.ID
	return func() tea.Msg {
		updated, err := lifecycle.Update(collection, taskID, cmd)
		if err != nil {
			return collectionSavedMsg{err: err}
		}
		if err := store.Save(context.Background(), userID, updated); err != nil {
			return collectionSavedMsg{err: err}
		}
		return collectionSavedMsg{tasks: updated, status: status}
	}
}

func (m Model) deleteTaskCmd(taskID string) tea.Cmd {
	store := m.store
	lifecycle := m.lifecycle
	collection := m.collection
	userID := m.user.ID
	return func() tea.Msg {
		updated := lifecycle.Delete(collection, taskID)
		if err := store.Save(context.Background(), userID, updated); err != nil {
			return collectionSavedMsg{err: err}
		}
		return collectionSavedMsg{tasks: updated, status: "task deleted"}
	}
}

// collaborationCmd routes a prompt result through the collaboration
// operations and writes the task back via the lifecycle update path.
func (m Model) collaborationCmd(mode inputMode, task domain.Task, value string) tea.Cmd {
	var (
		updated domain.Task
		status  string
		err     error
	)
	switch mode {
	case inputAddTag:
		updated = application.AddTag(task, value)
		status = "tag added"
	case inputRemoveTag:
		updated = application.RemoveTag(task, strings.ToLower(strings.TrimSpace(value)))
		status = "tag removed"
	case inputShare:
		updated, err = application.AddCollaborator(task, value)
		status = "shared with " + strings.ToLower(strings.TrimSpace(value))
	case inputUnshare:
		updated = application.RemoveCollaborator(task, strings.ToLower(strings.TrimSpace(value)))
		status = "collaborator removed"
	default:
		return nil
	}
	if err != nil {
		return func() tea.Msg { return collectionSavedMsg{err: err} }
	}

	tags := updated.Tags
	sharedWith := updated.SharedWith
	return m.updateTaskCmd(task.ID, application.UpdateCommand{
		Tags:       &tags,
		SharedWith: &sharedWith,
	}, status)
}

func (m Model) loadCollectionCmd() tea.Cmd {
	store := m.store
	userID := m.user.ID
	return func() tea.Msg {
		tasks, err := store.Load(context.Background(), userID)
		return collectionLoadedMsg{tasks: tasks, err: err}
	}
}

// refreshView recomputes the derived view and stats from the canonical
// collection.
func (m *Model) refreshView() {
	m.view = m.engine.Apply(m.collection, m.spec)
	m.stats = m.engine.Stats(m.collection)
	m.ensureSelection()
}

func (m *Model) ensureSelection() {
	if len(m.view) == 0 {
		m.selected = 0
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.view) {
		m.selected = len(m.view) - 1
	}
}

func (m Model) currentTask() (domain.Task, bool) {
	if m.selected < 0 || m.selected >= len(m.view) {
		return domain.Task{}, false
	}
	return m.view[m.selected], true
}

func nextStatus(s domain.Status) domain.Status {
	switch s {
	case domain.StatusTodo:
		return domain.StatusInProgress
	case domain.StatusInProgress:
		return domain.StatusCompleted
	default:
		return domain.StatusTodo
	}
}

func nextStatusFilter(f domain.StatusFilter) domain.StatusFilter {
	switch f {
	case domain.StatusFilterAll:
		return domain.StatusFilterTodo
	case domain.StatusFilterTodo:
		return domain.StatusFilterInProgress
	case domain.StatusFilterInProgress:
		return domain.StatusFilterCompleted
	case domain.StatusFilterCompleted:
		return domain.StatusFilterOverdue
	case domain.StatusFilterOverdue:
		return domain.StatusFilterDueToday
	default:
		return domain.StatusFilterAll
	}
}

func nextPriorityFilter(f domain.PriorityFilter) domain.PriorityFilter {
	switch f {
	case domain.PriorityFilterAll, "":
		return domain.PriorityFilter(domain.PriorityHigh)
	case domain.PriorityFilter(domain.PriorityHigh):
		return domain.PriorityFilter(domain.PriorityMedium)
	case domain.PriorityFilter(domain.PriorityMedium):
		return domain.PriorityFilter(domain.PriorityLow)
	default:
		return domain.PriorityFilterAll
	}
}

func nextSortKey(k domain.SortKey) domain.SortKey {
	switch k {
	case domain.SortByCreatedAt:
		return domain.SortByTitle
	case domain.SortByTitle:
		return domain.SortByPriority
	case domain.SortByPriority:
		return domain.SortByDueDate
	case domain.SortByDueDate:
		return domain.SortByStatus
	default:
		return domain.SortByCreatedAt
	}
}
