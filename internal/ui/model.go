package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"campaigndash/internal/auth"
	"campaigndash/internal/config"
	"campaigndash/internal/domain"
	"campaigndash/internal/eventbus"
	"campaigndash/internal/mockdata"
	"campaigndash/internal/notifications"
	"campaigndash/internal/palette"
	"campaigndash/internal/routes"
	"campaigndash/internal/session"
	"campaigndash/internal/ui/input"
	inputtypes "campaigndash/internal/ui/input/types"
	"campaigndash/internal/ui/services/navigation"
	"campaigndash/internal/ui/views"
)

const (
	// rows the palette shows before scrolling
	paletteHeight = 8
	// toasts kept on screen at once
	maxToasts = 3
)

type toast struct {
	id int
	views.Toast
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	logger  *zap.Logger
	session *session.Manager
	routes  *routes.Table
	center  *notifications.Center

	width  int
	height int

	// routing
	path        string
	match       routes.Match
	from        string // protected path to return to after sign in
	initialPath string

	// dashboard
	sidebarEntries []routes.FlatEntry
	sidebar        *navigation.Service
	notifNav       *navigation.Service
	contentFocused bool
	timeRange      domain.TimeRange
	pageGen        uint64
	pageLoading    bool
	notified       map[string]bool

	// palette
	selector   *palette.Selector
	paletteNav *navigation.Service
	pendingNav string

	// auth screens
	login        *auth.LoginFlow
	loginForm    *form
	codeInput    textinput.Model
	signupForm   *form
	signupErrs   auth.FieldErrors
	authGen      uint64
	countdownGen uint64
	submitting   bool
	methodIndex  int

	toasts      []toast
	nextToastID int

	showHelp    bool
	helpScroll  int
	helpPrev    inputtypes.Mode
	inPagerMode bool

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

// Option configures a Model
type Option func(*Model)

// WithBus publishes navigation events on the bus
func WithBus(bus eventbus.EventBus) Option {
	return func(m *Model) { m.bus = bus }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithInitialPath sets the route requested at startup
func WithInitialPath(path string) Option {
	return func(m *Model) {
		if path != "" {
			m.initialPath = routes.Clean(path)
		}
	}
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, sess *session.Manager, center *notifications.Center, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if center == nil {
		center = notifications.New(notifications.WithMax(cfg.Notifications.Max))
	}
	if sess == nil {
		sess = session.NewManager(nil, nil)
	}

	m := &Model{
		config:       cfg,
		logger:       zap.NewNop(),
		session:      sess,
		routes:       routes.NewTable(),
		center:       center,
		initialPath:  routes.Dashboard,
		timeRange:    domain.TimeRange(cfg.UI.DefaultTimeRange),
		notified:     make(map[string]bool),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		signupErrs:   auth.FieldErrors{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.Named("ui")

	m.sidebarEntries = routes.FlattenSidebar(routes.Sidebar())
	m.sidebar = navigation.NewService(20)
	m.sidebar.SetSkip(func(i int) bool { return m.sidebarEntries[i].Path == "" })
	m.sidebar.SetTotal(len(m.sidebarEntries))
	m.notifNav = navigation.NewService(5)
	m.paletteNav = navigation.NewService(paletteHeight)

	var actions []palette.Action
	for _, qa := range mockdata.QuickActions() {
		actions = append(actions, palette.Action{
			QuickAction: qa,
			Invoke:      func() { m.pendingNav = qa.Route },
		})
	}
	m.selector = palette.NewSelector(palette.Catalog{
		Contacts: mockdata.Contacts(),
		Searches: mockdata.RecentSearches(),
		Actions:  actions,
	})

	m.login = auth.NewLoginFlow(cfg.Credentials(), cfg.Auth.ResendCooldown.Duration)
	m.loginForm = newForm(
		fieldSpec{key: auth.FieldEmail, label: "Email", placeholder: "you@example.com"},
		fieldSpec{key: auth.FieldPassword, label: "Password", placeholder: "Your password", password: true},
	)
	m.signupForm = newForm(
		fieldSpec{key: auth.FieldFirstName, label: "First name", placeholder: "John"},
		fieldSpec{key: auth.FieldLastName, label: "Last name", placeholder: "Doe"},
		fieldSpec{key: auth.FieldEmail, label: "Email", placeholder: "you@example.com"},
		fieldSpec{key: auth.FieldPassword, label: "Password", placeholder: "At least 8 characters", password: true},
		fieldSpec{key: auth.FieldConfirmPassword, label: "Confirm password", placeholder: "Repeat your password", password: true},
		fieldSpec{key: auth.FieldTerms, label: "I agree to the terms and conditions", checkbox: true},
	)
	m.codeInput = textinput.New()
	m.codeInput.Prompt = ""
	m.codeInput.CharLimit = auth.CodeLength

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return restoreSessionMsg{} }
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

// Path returns the route being shown
func (m *Model) Path() string {
	return m.path
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

func (m *Model) screen() views.Screen {
	switch {
	case m.session.IsLoading() || m.path == "":
		return views.ScreenLoading
	case m.path == routes.Login:
		return views.ScreenLogin
	case m.path == routes.Signup:
		return views.ScreenSignup
	default:
		return views.ScreenDashboard
	}
}

func (m *Model) inputContext() *input.ModelContext {
	ctx := &input.ModelContext{
		Path:          m.path,
		ComingSoon:    m.match.Route.ComingSoon,
		TimeRangePage: m.path == routes.Dashboard || m.path == routes.Analytics,
		Notifications: m.path == routes.Notifications,
		Submitting:    m.submitting,
		ResendReady:   m.login.CanResend(),
	}
	switch m.path {
	case routes.Login:
		ctx.Field = m.loginForm.focused()
	case routes.Signup:
		ctx.Field = m.signupForm.focused()
	}
	return ctx
}

// navigate resolves a requested path through the route guard and shows the
// result. It is the only place the visible route changes.
func (m *Model) navigate(path string) tea.Cmd {
	requested := routes.Clean(path)
	res := m.session.Resolve(requested)
	if res.Decision == session.Pending {
		m.initialPath = requested
		return nil
	}
	if res.Decision == session.RedirectToLogin {
		m.from = requested
	}

	old := m.path
	m.path = res.Path
	m.match = res.Match
	m.logger.Debug("navigate",
		zap.String("requested", requested),
		zap.String("path", m.path),
		zap.Stringer("decision", res.Decision))

	if old == m.path {
		return nil
	}

	// leaving an auth screen drops its pending timers
	if old == routes.Login || old == routes.Signup {
		m.authGen++
		m.countdownGen++
		m.submitting = false
	}

	var cmds []tea.Cmd
	switch m.path {
	case routes.Login:
		m.login = auth.NewLoginFlow(m.config.Credentials(), m.config.Auth.ResendCooldown.Duration)
		m.loginForm.reset()
		m.codeInput.Reset()
		m.inputHandler.SetMode(inputtypes.ModeLogin)
		cmds = append(cmds, m.loginForm.setFocus(0))
	case routes.Signup:
		m.signupForm.reset()
		m.signupErrs = auth.FieldErrors{}
		m.inputHandler.SetMode(inputtypes.ModeSignup)
		cmds = append(cmds, m.signupForm.setFocus(0))
	default:
		m.inputHandler.SetMode(inputtypes.ModeNormal)
		cmds = append(cmds, m.enterPage())
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.NavigatedEvent{From: old, To: m.path})
	}
	return tea.Batch(cmds...)
}

// enterPage syncs the dashboard to the current route and starts the
// simulated data load
func (m *Model) enterPage() tea.Cmd {
	for i, e := range m.sidebarEntries {
		if e.Path == m.path {
			m.sidebar.MoveToIndex(i)
			break
		}
	}
	m.contentFocused = false
	m.notifNav.SetTotal(m.center.Len())
	m.notifNav.MoveToIndex(0)

	m.pageGen++
	m.pageLoading = false
	if m.path != routes.Dashboard && m.path != routes.Analytics {
		return nil
	}
	m.pageLoading = true
	gen := m.pageGen
	return tea.Tick(m.config.UI.PageLoadDelay.Duration, func(time.Time) tea.Msg {
		return pageLoadedMsg{gen: gen}
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if m.contentFocused {
			m.notifNav.Navigate(navigation.Direction(a.Direction))
		} else {
			m.sidebar.Navigate(navigation.Direction(a.Direction))
		}

	case inputtypes.OpenSelectedAction:
		if m.contentFocused {
			m.markSelectedRead()
			return nil
		}
		if i := m.sidebar.GetCursor(); i < len(m.sidebarEntries) && m.sidebarEntries[i].Path != "" {
			return m.navigate(m.sidebarEntries[i].Path)
		}

	case inputtypes.ToggleFocusAction:
		m.contentFocused = !m.contentFocused && m.center.Len() > 0

	case inputtypes.CycleTimeRangeAction:
		m.timeRange = m.timeRange.Next()

	case inputtypes.LogoutAction:
		target := m.session.Logout()
		m.from = ""
		return tea.Batch(m.navigate(target), m.addToast("You have been signed out.", domain.NotificationInfo))

	case inputtypes.NotifyMeAction:
		if m.notified[m.path] {
			return nil
		}
		m.notified[m.path] = true
		title := m.match.Route.Title
		m.center.Add("Reminder set", "We'll let you know when "+title+" launches.", domain.NotificationInfo)
		m.notifNav.SetTotal(m.center.Len())
		return m.addToast("We'll notify you when "+title+" is ready.", domain.NotificationSuccess)

	case inputtypes.MarkReadAction:
		m.markSelectedRead()

	case inputtypes.MarkAllReadAction:
		m.center.MarkAllAsRead()
		return m.addToast("All notifications marked as read.", domain.NotificationSuccess)

	case inputtypes.RemoveNotificationAction:
		list := m.center.List()
		if i := m.notifNav.GetCursor(); m.contentFocused && i < len(list) {
			m.center.Remove(list[i].ID)
			m.notifNav.SetTotal(m.center.Len())
			if m.center.Len() == 0 {
				m.contentFocused = false
			}
		}

	case inputtypes.ClearNotificationsAction:
		m.center.ClearAll()
		m.notifNav.SetTotal(0)
		m.contentFocused = false

	case inputtypes.OpenPaletteAction:
		if m.screen() != views.ScreenDashboard {
			m.inputHandler.SetMode(inputtypes.ModeNormal)
			return nil
		}
		m.selector.Open()
		m.resetPaletteViewport()

	case inputtypes.ClosePaletteAction:
		m.selector.Close()

	case inputtypes.UpdateTextAction:
		if m.selector.IsOpen() {
			m.selector.SetQuery(a.Text)
			m.resetPaletteViewport()
		}

	case inputtypes.PaletteMoveAction:
		dir := palette.Next
		if a.Direction == "prev" {
			dir = palette.Previous
		}
		if req, ok := m.selector.Move(dir); ok {
			return func() tea.Msg { return scrollMsg{req: req} }
		}

	case inputtypes.PaletteActivateAction:
		act, ok := m.selector.Activate()
		if !ok {
			return nil
		}
		m.inputHandler.SetMode(inputtypes.ModeNormal)
		target := act.Route
		if act.Invoked {
			target, m.pendingNav = m.pendingNav, ""
		}
		m.logger.Debug("palette activated", zap.Stringer("kind", act.Item.Kind), zap.String("id", act.Item.ID()), zap.String("target", target))
		if target != "" {
			return m.navigate(target)
		}

	case inputtypes.FocusFieldAction:
		return m.activeForm().move(a.Delta)

	case inputtypes.FormKeyAction:
		return m.formKey(a.Msg)

	case inputtypes.SubmitFormAction:
		return m.submit()

	case inputtypes.DemoFillAction:
		m.demoFill()

	case inputtypes.ToggleTermsAction:
		m.signupForm.setChecked(auth.FieldTerms, !m.signupForm.checked(auth.FieldTerms))
		delete(m.signupErrs, auth.FieldTerms)

	case inputtypes.SwitchAuthScreenAction:
		if m.path == routes.Signup {
			return m.navigate(routes.Login)
		}
		return m.navigate(routes.Signup)

	case inputtypes.BackAction:
		m.login.Back()
		m.countdownGen++
		m.codeInput.Reset()
		m.codeInput.Blur()
		m.inputHandler.SetMode(inputtypes.ModeLogin)
		return m.loginForm.focusKey(auth.FieldPassword)

	case inputtypes.PickMethodAction:
		n := len(auth.Methods())
		if a.Delta == 0 {
			m.methodIndex = 0
		} else {
			m.methodIndex = (m.methodIndex + a.Delta + n) % n
		}

	case inputtypes.SendCodeAction:
		method := auth.Methods()[m.methodIndex]
		text, err := m.login.Resend(method)
		if err != nil {
			m.logger.Warn("resend failed", zap.Error(err))
			return m.addToast("Please wait before requesting a new code.", domain.NotificationWarning)
		}
		if m.bus != nil {
			m.bus.Publish(eventbus.CodeSentEvent{Email: m.login.Email(), Method: method.DisplayName()})
		}
		return tea.Batch(m.startCountdown(), m.addToast(text, domain.NotificationSuccess))

	case inputtypes.ToggleHelpAction:
		return m.toggleHelp()

	case inputtypes.QuitAction:
		m.logger.Info("quit", zap.Bool("force", a.Force))
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restoreSessionMsg:
		m.session.Restore()
		return m, m.navigate(m.initialPath)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pageLoadedMsg:
		if msg.gen == m.pageGen {
			m.pageLoading = false
		}
		return m, nil

	case authDoneMsg:
		if msg.gen != m.authGen {
			return m, nil
		}
		m.submitting = false
		return m, m.finishAuth(msg.kind)

	case countdownMsg:
		if msg.gen != m.countdownGen {
			return m, nil
		}
		if m.login.Tick() {
			return m, m.countdownTick()
		}
		return m, nil

	case scrollMsg:
		if m.selector.IsCurrent(msg.req) {
			m.paletteNav.Reveal(msg.req.Index)
		}
		return m, nil

	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline popup
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.openHelpPopup()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// blink and other input messages for the focused form field
		return m, m.activeFormUpdate(msg)
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.NotificationAddedEvent:
		m.notifNav.SetTotal(m.center.Len())
	case eventbus.ErrorEvent:
		m.logger.Error(e.Message, zap.Error(e.Err))
		return m.addToast(e.Message, domain.NotificationError)
	}
	return nil
}

// submit starts the simulated request for the active auth form
func (m *Model) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	switch {
	case m.path == routes.Login && m.login.Step() == auth.StepCredentials:
		email, password := m.loginForm.value(auth.FieldEmail), m.loginForm.value(auth.FieldPassword)
		if !auth.ValidateLogin(email, password).Valid() {
			// records the field errors without the round trip
			_ = m.login.SubmitCredentials(email, password)
			return nil
		}
		return m.startAuth(authCredentials, m.config.Auth.Latency.Duration)

	case m.path == routes.Login:
		if !auth.IsCompleteCode(m.codeInput.Value()) {
			return nil
		}
		return m.startAuth(authCode, m.config.Auth.Latency.Duration)

	case m.path == routes.Signup:
		if errs := m.signupValues().Validate(); !errs.Valid() {
			m.signupErrs = errs
			return nil
		}
		m.signupErrs = auth.FieldErrors{}
		return m.startAuth(authSignup, m.config.Auth.SignupLatency.Duration)
	}
	return nil
}

func (m *Model) startAuth(kind authKind, latency time.Duration) tea.Cmd {
	m.submitting = true
	gen := m.authGen
	return tea.Tick(latency, func(time.Time) tea.Msg {
		return authDoneMsg{gen: gen, kind: kind}
	})
}

// finishAuth completes a submission once its latency has elapsed
func (m *Model) finishAuth(kind authKind) tea.Cmd {
	switch kind {
	case authCredentials:
		err := m.login.SubmitCredentials(m.loginForm.value(auth.FieldEmail), m.loginForm.value(auth.FieldPassword))
		if err != nil {
			m.logger.Info("sign in rejected", zap.Error(err))
			return nil
		}
		m.inputHandler.SetMode(inputtypes.ModeCode)
		m.codeInput.Reset()
		focus := m.codeInput.Focus()
		if m.bus != nil {
			m.bus.Publish(eventbus.CodeSentEvent{Email: m.login.Email(), Method: auth.MethodEmail.DisplayName()})
		}
		return tea.Batch(focus, m.startCountdown())

	case authCode:
		err := m.login.SubmitCode(m.codeInput.Value())
		if errors.Is(err, auth.ErrInvalidCode) {
			m.codeInput.Reset()
			return nil
		}
		if err != nil {
			return nil
		}
		target := m.session.Login(m.login.Email(), "", m.from)
		m.from = ""
		return tea.Batch(m.navigate(target), m.addToast("Welcome back!", domain.NotificationSuccess))

	case authSignup:
		form := m.signupValues()
		target := m.session.Login(form.Email, form.FullName(), "")
		m.from = ""
		return tea.Batch(m.navigate(target), m.addToast("Account created. Welcome, "+form.FullName()+"!", domain.NotificationSuccess))
	}
	return nil
}

func (m *Model) startCountdown() tea.Cmd {
	m.countdownGen++
	return m.countdownTick()
}

func (m *Model) countdownTick() tea.Cmd {
	gen := m.countdownGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownMsg{gen: gen}
	})
}

func (m *Model) signupValues() auth.SignupForm {
	f := m.signupForm
	return auth.SignupForm{
		FirstName:       f.value(auth.FieldFirstName),
		LastName:        f.value(auth.FieldLastName),
		Email:           f.value(auth.FieldEmail),
		Password:        f.value(auth.FieldPassword),
		ConfirmPassword: f.value(auth.FieldConfirmPassword),
		AgreeToTerms:    f.checked(auth.FieldTerms),
	}
}

func (m *Model) demoFill() {
	creds := m.config.Credentials()
	switch m.path {
	case routes.Login:
		m.loginForm.setValue(auth.FieldEmail, creds.Email)
		m.loginForm.setValue(auth.FieldPassword, creds.Password)
		m.login.ClearError(auth.FieldEmail)
		m.login.ClearError(auth.FieldPassword)
	case routes.Signup:
		demo := auth.DemoSignup(creds)
		m.signupForm.setValue(auth.FieldFirstName, demo.FirstName)
		m.signupForm.setValue(auth.FieldLastName, demo.LastName)
		m.signupForm.setValue(auth.FieldEmail, demo.Email)
		m.signupForm.setValue(auth.FieldPassword, demo.Password)
		m.signupForm.setValue(auth.FieldConfirmPassword, demo.ConfirmPassword)
		m.signupForm.setChecked(auth.FieldTerms, demo.AgreeToTerms)
		m.signupErrs = auth.FieldErrors{}
	}
}

// formKey edits the focused field; typing clears that field's error
func (m *Model) formKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.path == routes.Login && m.login.Step() == auth.StepCode:
		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(msg)
		m.login.ClearError(auth.FieldCode)
		return cmd
	case m.path == routes.Login:
		m.login.ClearError(m.loginForm.focused())
		return m.loginForm.update(msg)
	case m.path == routes.Signup:
		delete(m.signupErrs, m.signupForm.focused())
		return m.signupForm.update(msg)
	}
	return nil
}

func (m *Model) activeForm() *form {
	if m.path == routes.Signup {
		return m.signupForm
	}
	return m.loginForm
}

func (m *Model) activeFormUpdate(msg tea.Msg) tea.Cmd {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeLogin, inputtypes.ModeSignup:
		return m.activeForm().update(msg)
	case inputtypes.ModeCode:
		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) markSelectedRead() {
	list := m.center.List()
	if i := m.notifNav.GetCursor(); m.contentFocused && i < len(list) {
		m.center.MarkAsRead(list[i].ID)
	}
}

func (m *Model) resetPaletteViewport() {
	m.paletteNav.SetTotal(len(m.selector.Visible()))
	m.paletteNav.MoveToIndex(0)
}

// addToast shows a transient message that expires on its own
func (m *Model) addToast(text string, typ domain.NotificationType) tea.Cmd {
	m.nextToastID++
	id := m.nextToastID
	m.toasts = append(m.toasts, toast{id: id, Toast: views.Toast{Text: text, Type: typ}})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
	return tea.Tick(m.config.UI.ToastDuration.Duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) toggleHelp() tea.Cmd {
	if m.showHelp {
		m.showHelp = false
		m.inputHandler.SetMode(m.helpPrev)
		return nil
	}
	if m.program != nil {
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())
	}
	m.openHelpPopup()
	return nil
}

func (m *Model) openHelpPopup() {
	if m.showHelp {
		return
	}
	m.showHelp = true
	m.helpScroll = 0
	m.helpPrev = m.inputHandler.CurrentMode()
	m.inputHandler.SetMode(inputtypes.ModeHelp)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewHelpOps(m.program).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// updateViewportHeight sizes the scrolled lists from the window
func (m *Model) updateViewportHeight() {
	// header, header border and footer
	body := max(m.height-3, 3)
	m.sidebar.SetViewportHeight(max(body-2, 1))
	m.sidebar.Reveal(m.sidebar.GetCursor())
	// title, description, blank line and hint; two lines per notification
	m.notifNav.SetViewportHeight(max((body-6)/2, 1))
	m.notifNav.Reveal(m.notifNav.GetCursor())
}

func (m *Model) buildViewState() views.ViewState {
	state := views.ViewState{
		Width:  m.width,
		Height: m.height,
		Screen: m.screen(),
		Unread: m.center.UnreadCount(),
		Toasts: make([]views.Toast, 0, len(m.toasts)),
	}
	for _, t := range m.toasts {
		state.Toasts = append(state.Toasts, t.Toast)
	}
	if u := m.session.User(); u != nil {
		state.User = u.DisplayName()
	}

	switch state.Screen {
	case views.ScreenLogin:
		state.Login = m.loginView()
	case views.ScreenSignup:
		state.Signup = &views.SignupView{
			Fields:   m.signupForm.views(m.signupErrs),
			Password: m.signupForm.value(auth.FieldPassword),
			Busy:     m.submitting,
		}
	case views.ScreenDashboard:
		state.Sidebar = views.SidebarView{
			Entries: m.sidebarEntries,
			Cursor:  m.sidebar.GetCursor(),
			Offset:  m.sidebar.GetViewportOffset(),
			Height:  m.sidebar.GetViewportHeight(),
			Active:  m.path,
			Focused: m.contentFocused,
		}
		state.Page = m.pageView()
	}

	if m.selector.IsOpen() {
		ti := m.inputHandler.TextInput()
		inputView := ""
		if ti != nil {
			inputView = ti.View()
		}
		state.Palette = &views.PaletteView{
			Input:    inputView,
			Sections: m.selector.Sections(),
			Selected: m.selector.Selected(),
			Offset:   m.paletteNav.GetViewportOffset(),
			Height:   m.paletteNav.GetViewportHeight(),
		}
	}

	if m.showHelp {
		state.ShowHelp = true
		state.HelpContent = m.helpRenderer.renderHelpContent(m.height, m.helpScroll)
	}
	return state
}

func (m *Model) loginView() *views.LoginView {
	v := &views.LoginView{
		Step:           m.login.Step(),
		Fields:         m.loginForm.views(m.login.Errors()),
		GeneralError:   m.login.GeneralError(),
		Busy:           m.submitting,
		Email:          m.login.Email(),
		Code:           m.codeInput.Value(),
		CodeError:      m.login.FieldError(auth.FieldCode),
		Countdown:      m.login.Countdown(),
		ChoosingMethod: m.inputHandler.CurrentMode() == inputtypes.ModeResendMethod,
		MethodIndex:    m.methodIndex,
		Demo:           m.config.Credentials(),
	}
	for _, method := range auth.Methods() {
		v.Methods = append(v.Methods, method.DisplayName())
	}
	return v
}

func (m *Model) pageView() views.PageView {
	p := views.PageView{
		Route:          m.match.Route,
		Path:           m.path,
		Loading:        m.pageLoading,
		TimeRange:      m.timeRange,
		ContentFocused: m.contentFocused,
		Notified:       m.notified[m.path],
	}
	switch m.path {
	case routes.Dashboard, routes.Analytics:
		p.Metrics = mockdata.Metrics(m.timeRange)
		p.Chart = mockdata.ChartSeries(m.timeRange, time.Now())
	case routes.Notifications:
		p.Notifications = m.center.List()
		p.NotificationCursor = m.notifNav.GetCursor()
		p.NotificationOffset = m.notifNav.GetViewportOffset()
		p.NotificationHeight = m.notifNav.GetViewportHeight()
	}
	if m.match.Route.Template == routes.ContactDetail {
		if c, ok := mockdata.ContactByID(m.match.Vars["id"]); ok {
			p.Contact = &c
		}
	}
	return p
}
