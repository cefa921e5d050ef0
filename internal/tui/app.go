// Package tui is the interactive terminal front end: a themed feed browser
// with search, bookmarks, and an analytics screen. All state lives on the
// single bubbletea update loop; fetches run on the pipeline dispatcher and
// come back as completion messages.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"newslens/internal/analytics"
	"newslens/internal/config"
	"newslens/internal/database"
	"newslens/internal/pipeline"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeFeed mode = iota
	modeSearch
	modeBookmarks
	modeAnalytics
	modeHelp
)

type App struct {
	cfg        *config.Config
	db         *database.DB
	dispatcher *pipeline.Dispatcher
	logger     *zap.Logger
	apiKey     string

	articles []database.Article
	cursor   int
	focus    focusPane
	mode     mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	categories  categoryBar

	// State
	fetching      bool
	previewScroll int
	recentQueries []string
	historyIdx    int
	report        *analytics.Report
	status        string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg        *config.Config
	DB         *database.DB
	Dispatcher *pipeline.Dispatcher
	APIKey     string
	Logger     *zap.Logger
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search news..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		cfg:         opts.Cfg,
		db:          opts.DB,
		dispatcher:  opts.Dispatcher,
		apiKey:      opts.APIKey,
		logger:      logger,
		searchInput: ti,
		spinner:     sp,
		categories:  newCategoryBar(config.Categories),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadArticlesCmd(),
		a.loadSearchesCmd(),
		waitForEventCmd(a.dispatcher),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case articlesLoadedMsg:
		a.articles = msg.articles
		if a.cursor >= len(a.articles) {
			a.cursor = max(0, len(a.articles)-1)
		}
		return a, nil

	case fetchEventMsg:
		return a.handleFetchEvent(msg.event)

	case bookmarkToggledMsg:
		for i := range a.articles {
			if a.articles[i].URL == msg.url {
				a.articles[i].Bookmarked = msg.state.Bookmarked()
				break
			}
		}
		if msg.state == database.BookmarkOff {
			a.status = "Bookmark removed"
		} else {
			a.status = "Bookmark saved"
		}
		if a.mode == modeBookmarks {
			return a, a.loadBookmarksCmd()
		}
		return a, nil

	case bookmarksClearedMsg:
		a.status = fmt.Sprintf("Cleared %d bookmarks", msg.count)
		if a.mode == modeBookmarks {
			return a, a.loadBookmarksCmd()
		}
		return a, nil

	case analyticsMsg:
		a.report = &msg.report
		return a, nil

	case searchesLoadedMsg:
		a.recentQueries = msg.queries
		a.historyIdx = -1
		return a, nil

	case exportDoneMsg:
		a.status = fmt.Sprintf("Exported %d articles to %s", msg.count, msg.path)
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.fetching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleFetchEvent(ev pipeline.Event) (tea.Model, tea.Cmd) {
	a.fetching = false
	cmds := []tea.Cmd{waitForEventCmd(a.dispatcher)}

	if ev.Err != nil {
		a.err = ev.Err
		a.logger.Warn("fetch failed", zap.Error(ev.Err))
		return a, tea.Batch(cmds...)
	}

	r := ev.Result
	if r.Query != "" {
		a.status = fmt.Sprintf("Found %d articles for %q, saved %d", len(r.Articles), r.Query, r.Saved)
		cmds = append(cmds, a.loadSearchesCmd())
	} else {
		a.status = fmt.Sprintf("Loaded %d articles, saved %d", len(r.Articles), r.Saved)
	}

	if a.mode == modeFeed || a.mode == modeSearch {
		a.mode = modeFeed
		a.cursor = 0
		cmds = append(cmds, a.loadArticlesCmd())
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeBookmarks:
		return a.handleBookmarksKey(msg)
	case modeAnalytics:
		return a.handleAnalyticsKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeFeed
		}
		return a, nil
	}

	// Feed mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		return a.moveDown()
	case "k", "up":
		return a.moveUp()
	case "tab":
		a.toggleFocus()
		return a, nil
	case "o", "enter":
		if article := a.selected(); article != nil {
			return a, openBrowserCmd(article.URL)
		}
		return a, nil
	case "b":
		if article := a.selected(); article != nil {
			return a, a.toggleBookmarkCmd(*article)
		}
		return a, nil
	case "r":
		return a.submitFetch(pipeline.Request{
			Category:  a.categories.current(),
			Country:   a.cfg.Country,
			PageLimit: a.cfg.PageSize,
		})
	case "left", "[":
		a.categories.prev()
		return a, nil
	case "right", "]":
		a.categories.next()
		return a, nil
	case "/":
		a.mode = modeSearch
		a.historyIdx = -1
		a.searchInput.Focus()
		return a, tea.Batch(textinput.Blink, a.loadSearchesCmd())
	case "m":
		a.mode = modeBookmarks
		a.cursor = 0
		a.previewScroll = 0
		return a, a.loadBookmarksCmd()
	case "a":
		a.mode = modeAnalytics
		a.report = nil
		return a, a.loadAnalyticsCmd()
	case "e":
		path := fmt.Sprintf("newslens-export-%s.csv", time.Now().Format("20060102-150405"))
		return a, a.exportCmd(path)
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeFeed
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		return a, nil
	case "enter":
		query := a.searchInput.Value()
		if query == "" {
			return a, nil
		}
		a.searchInput.Blur()
		return a.submitFetch(pipeline.Request{
			Query:     query,
			PageLimit: a.cfg.PageSize,
		})
	case "up":
		// Walk back through recent queries like shell history.
		if len(a.recentQueries) > 0 && a.historyIdx < len(a.recentQueries)-1 {
			a.historyIdx++
			a.searchInput.SetValue(a.recentQueries[a.historyIdx])
			a.searchInput.CursorEnd()
		}
		return a, nil
	case "down":
		if a.historyIdx > 0 {
			a.historyIdx--
			a.searchInput.SetValue(a.recentQueries[a.historyIdx])
			a.searchInput.CursorEnd()
		} else if a.historyIdx == 0 {
			a.historyIdx = -1
			a.searchInput.SetValue("")
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleBookmarksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "m":
		a.mode = modeFeed
		a.cursor = 0
		a.previewScroll = 0
		return a, a.loadArticlesCmd()
	case "j", "down":
		return a.moveDown()
	case "k", "up":
		return a.moveUp()
	case "tab":
		a.toggleFocus()
		return a, nil
	case "o", "enter":
		if article := a.selected(); article != nil {
			return a, openBrowserCmd(article.URL)
		}
		return a, nil
	case "b":
		if article := a.selected(); article != nil {
			return a, a.toggleBookmarkCmd(*article)
		}
		return a, nil
	case "C":
		return a, a.clearBookmarksCmd()
	case "?":
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) handleAnalyticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "a":
		a.mode = modeFeed
		return a, nil
	case "r":
		a.report = nil
		return a, a.loadAnalyticsCmd()
	}
	return a, nil
}

func (a *App) moveDown() (tea.Model, tea.Cmd) {
	if a.focus == focusList && a.cursor < len(a.articles)-1 {
		a.cursor++
		a.previewScroll = 0
	} else if a.focus == focusPreview {
		a.previewScroll++
	}
	return a, nil
}

func (a *App) moveUp() (tea.Model, tea.Cmd) {
	if a.focus == focusList && a.cursor > 0 {
		a.cursor--
		a.previewScroll = 0
	} else if a.focus == focusPreview && a.previewScroll > 0 {
		a.previewScroll--
	}
	return a, nil
}

func (a *App) toggleFocus() {
	if a.focus == focusList {
		a.focus = focusPreview
	} else {
		a.focus = focusList
	}
}

func (a *App) selected() *database.Article {
	if len(a.articles) == 0 || a.cursor >= len(a.articles) {
		return nil
	}
	return &a.articles[a.cursor]
}

func (a *App) submitFetch(req pipeline.Request) (tea.Model, tea.Cmd) {
	if a.apiKey == "" {
		a.err = config.ErrNoAPIKey
		a.mode = modeFeed
		return a, nil
	}

	err := a.dispatcher.Submit(a.apiKey, req)
	switch {
	case errors.Is(err, pipeline.ErrBusy):
		a.status = "A fetch is already running"
		return a, nil
	case err != nil:
		a.err = err
		return a, nil
	}

	a.fetching = true
	a.status = ""
	return a, a.spinner.Tick
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorPrimary).Render("  newslens")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	// Layout calculations
	headerHeight := 1
	tabHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - tabHeight - statusHeight - 4 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	header := a.renderHeader()

	if a.mode == modeAnalytics {
		body := renderAnalytics(a.report, a.cfg.AnalyticsDays, a.width, a.height-headerHeight-statusHeight)
		return lipgloss.JoinVertical(lipgloss.Left, header, body, a.renderStatus())
	}

	// Tab row: category tabs, bookmark title, or the search input
	var tabs string
	switch a.mode {
	case modeSearch:
		tabs = " " + a.searchInput.View()
	case modeBookmarks:
		tabs = " " + sectionTitleStyle.Render(fmt.Sprintf("Bookmarks (%d)", len(a.articles)))
	default:
		tabs = a.categories.render(a.width)
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1

	innerListW := listWidth - 4
	listContent := renderList(a.articles, a.cursor, contentHeight, innerListW, a.emptyMessage())

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(a.selected(), innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, a.renderStatus())
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("newslens")
	right := headerMetaStyle.Render(
		fmt.Sprintf("%s · %s", a.cfg.Country, time.Now().Format("Jan 2")),
	)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (a *App) emptyMessage() string {
	switch a.mode {
	case modeBookmarks:
		return "No bookmarks yet"
	default:
		return "No articles yet, press r to fetch headlines"
	}
}

func (a *App) renderStatus() string {
	left := fmt.Sprintf(" %d articles", len(a.articles))
	if a.status != "" {
		left += " · " + a.status
	}
	if a.fetching {
		left = a.spinner.View() + left + " (fetching...)"
	}
	if a.err != nil {
		left = " " + lipgloss.NewStyle().Foreground(colorNegative).Render(a.err.Error())
	}

	var right string
	switch a.mode {
	case modeSearch:
		right = " ↑ history  esc cancel  enter search "
	case modeBookmarks:
		right = " b remove  C clear all  esc back  q quit "
	case modeAnalytics:
		right = " r reload  esc back  q quit "
	default:
		right = " / search  m bookmarks  a analytics  ? help  q quit "
	}

	return renderStatusBar(left, right, a.width)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("newslens")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move through the article list\n" +
		"  tab           Switch focus between list and preview\n" +
		"  ←/→, [/]      Switch headline category\n\n" +
		dim.Render("Actions") + "\n" +
		"  r             Fetch headlines for the current category\n" +
		"  /             Search news (↑ recalls recent queries)\n" +
		"  b             Toggle bookmark on the selected article\n" +
		"  o, enter      Open the selected article in a browser\n" +
		"  e             Export all articles to CSV\n\n" +
		dim.Render("Screens") + "\n" +
		"  m             Bookmarks (C clears them all)\n" +
		"  a             Sentiment analytics\n" +
		"  ?             Toggle this help\n\n" +
		dim.Render("General") + "\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application and blocks until it exits.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
