package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/store"
	"github.com/luquetti/mis18/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	MenuView
	SeatingView
	WishlistView
	PlaylistView
	TrendsView
	MusicView
	CommentView
)

// commentSaveDelay is how long a guest must pause typing before the music
// comment is written through.
const commentSaveDelay = 600 * time.Millisecond

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	engine *tasks.PartyEngine
	guest  *models.User

	width  int
	height int

	nameInput   textinput.Model
	suggestions []string
	menuList    list.Model
	tableList   list.Model
	wishList    list.Model
	songList    list.Model
	trends      []models.GenreCount

	searchInput  textinput.Model
	searchHits   []models.Song
	search       *tasks.SearchCoordinator
	commentInput textinput.Model
	saver        *tasks.CommentSaver

	events chan store.Event
	status string
	err    error
	help   help.Model
	keys   keyMap
}

type loggedInMsg struct {
	user *models.User
	err  error
}

type suggestionsMsg struct {
	names []string
}

type seatingMsg struct {
	seating []models.TableSeating
	err     error
}

type wishlistMsg struct {
	items  []models.WishlistItem
	guests []models.User
	err    error
}

type songsMsg struct {
	songs []models.Song
	err   error
}

type trendsMsg struct {
	trends []models.GenreCount
	err    error
}

type actionMsg struct {
	err error
}

type collectionChangedMsg store.Event

type searchResultMsg tasks.SearchResult

// NewModel creates a new TUI model with the provided dependencies. The bus
// subscription keeps every open view current: a write from any other
// client redraws the affected list without user input.
func NewModel(ctx context.Context, engine *tasks.PartyEngine, bus *store.Bus) *Model {
	input := textinput.New()
	input.Placeholder = "Tu nombre..."
	input.Focus()

	m := &Model{
		ctx:       ctx,
		view:      LoginView,
		engine:    engine,
		nameInput: input,
		search:    tasks.NewSearchCoordinator(engine),
		events:    make(chan store.Event, 8),
		help:      help.New(),
		keys:      newKeyMap(),
	}

	for _, collection := range []string{"users", "songs", "wishlist", "prefs"} {
		events, cancel := bus.Subscribe(collection)
		go func() {
			defer cancel()
			for event := range events {
				select {
				case m.events <- event:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	return m
}

// Init starts the bus and search listeners.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent(), m.waitForSearchResult())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.menuList, &m.tableList, &m.wishList, &m.songList} {
			if l.Width() != 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case MenuView:
			return m.handleMenuKeys(msg)
		case SeatingView:
			return m.handleSeatingKeys(msg)
		case WishlistView:
			return m.handleWishlistKeys(msg)
		case MusicView:
			return m.handleMusicKeys(msg)
		case CommentView:
			return m.handleCommentKeys(msg)
		case PlaylistView, TrendsView:
			return m.handleReadOnlyKeys(msg)
		}

	case loggedInMsg:
		if msg.err != nil {
			m.status = "No te encontramos, probá de nuevo"
			return m, nil
		}
		m.guest = msg.user
		m.saver = tasks.NewCommentSaver(commentSaveDelay, func(comment string) error {
			return m.engine.SetMusicComment(m.guest.ID, comment)
		})
		m.status = ""
		m.view = MenuView
		m.menuList = m.newMenu()
		return m, nil

	case suggestionsMsg:
		m.suggestions = msg.names
		return m, nil

	case seatingMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.seating))
		for i, seat := range msg.seating {
			items[i] = tableItem{seat: seat}
		}
		m.tableList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.tableList.Title = "Elegí tu mesa"
		m.view = SeatingView
		return m, nil

	case wishlistMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		names := map[string]string{}
		for _, g := range msg.guests {
			names[g.ID] = g.FirstName()
		}
		items := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			items[i] = wishItem{item: item, names: names}
		}
		m.wishList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.wishList.Title = "Lista de regalos"
		m.view = WishlistView
		return m, nil

	case songsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song}
		}
		m.songList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.songList.Title = "Playlist sugerida"
		m.view = PlaylistView
		return m, nil

	case trendsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.trends = msg.trends
		m.view = TrendsView
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("✗ %v", msg.err)
		} else {
			m.status = "✓ listo"
		}
		return m, m.reloadCurrentView()

	case searchResultMsg:
		if m.view == MusicView {
			if msg.Err != nil {
				m.status = fmt.Sprintf("✗ %v", msg.Err)
			} else {
				m.searchHits = msg.Songs
				m.status = ""
			}
		}
		return m, m.waitForSearchResult()

	case collectionChangedMsg:
		return m, tea.Batch(m.reloadForCollection(msg.Collection), m.waitForEvent())
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LoginView:
		return m.renderLogin()
	case MenuView:
		return m.renderList(&m.menuList)
	case SeatingView:
		return m.renderSeating()
	case WishlistView:
		return m.renderWishlist()
	case MusicView:
		return m.renderMusic()
	case CommentView:
		return m.renderComment()
	case PlaylistView:
		return m.renderList(&m.songList)
	case TrendsView:
		return m.renderTrends()
	default:
		return ""
	}
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m, m.login(m.nameInput.Value())
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, tea.Batch(cmd, m.suggest(m.nameInput.Value()))
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if selected, ok := m.menuList.SelectedItem().(menuItem); ok {
			return m, m.openSection(selected.title)
		}
	}

	var cmd tea.Cmd
	m.menuList, cmd = m.menuList.Update(msg)
	return m, cmd
}

func (m *Model) handleSeatingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "x":
		return m, m.action(func() error { return m.engine.LeaveTable(m.guest.ID) })
	case "enter":
		if selected, ok := m.tableList.SelectedItem().(tableItem); ok {
			tableID := selected.seat.Table.ID
			return m, m.action(func() error { return m.engine.AssignTable(m.guest.ID, tableID) })
		}
	}

	var cmd tea.Cmd
	m.tableList, cmd = m.tableList.Update(msg)
	return m, cmd
}

func (m *Model) handleWishlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "enter":
		if selected, ok := m.wishList.SelectedItem().(wishItem); ok {
			itemID := selected.item.ID
			return m, m.action(func() error { return m.engine.ToggleWishlist(m.guest.ID, itemID) })
		}
	}

	var cmd tea.Cmd
	m.wishList, cmd = m.wishList.Update(msg)
	return m, cmd
}

func (m *Model) handleMusicKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		m.searchHits = nil
		m.status = ""
		return m, nil
	case "enter":
		if len(m.searchHits) == 0 {
			return m, nil
		}
		hit := m.searchHits[0]
		return m, m.action(func() error { return m.engine.SuggestSong(m.guest.ID, hit) })
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	query := m.searchInput.Value()
	if len(strings.TrimSpace(query)) < 2 {
		m.searchHits = nil
		return m, cmd
	}
	m.search.Search(m.ctx, query)
	return m, cmd
}

func (m *Model) handleCommentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if err := m.saver.Flush(); err != nil {
			m.status = fmt.Sprintf("✗ %v", err)
		} else {
			m.status = "✓ pedido guardado"
		}
		m.view = MenuView
		return m, nil
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	m.saver.Set(m.commentInput.Value())
	return m, cmd
}

func (m *Model) handleReadOnlyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	}

	if m.view == PlaylistView {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LoginView:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case MenuView:
		m.menuList, cmd = m.menuList.Update(msg)
	case SeatingView:
		m.tableList, cmd = m.tableList.Update(msg)
	case WishlistView:
		m.wishList, cmd = m.wishList.Update(msg)
	case MusicView:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case CommentView:
		m.commentInput, cmd = m.commentInput.Update(msg)
	case PlaylistView:
		m.songList, cmd = m.songList.Update(msg)
	}
	return m, cmd
}

func (m *Model) newMenu() list.Model {
	items := []list.Item{
		menuItem{title: "Mesas", desc: "Elegí dónde sentarte"},
		menuItem{title: "Regalos", desc: "Reservá un regalo de la lista"},
		menuItem{title: "Canciones", desc: "Buscá y sugerí canciones"},
		menuItem{title: "Pedido musical", desc: "Dejá tu pedido para el DJ"},
		menuItem{title: "Playlist", desc: "Canciones sugeridas por los invitados"},
		menuItem{title: "Tendencias", desc: "Los géneros más pedidos"},
	}
	menu := list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	menu.Title = fmt.Sprintf("Hola %s!", m.guest.FirstName())
	return menu
}

func (m *Model) openSection(title string) tea.Cmd {
	switch title {
	case "Mesas":
		return m.loadSeating()
	case "Regalos":
		return m.loadWishlist()
	case "Canciones":
		m.searchInput = textinput.New()
		m.searchInput.Placeholder = "Título o artista..."
		m.searchInput.Focus()
		m.searchHits = nil
		m.status = ""
		m.view = MusicView
		return textinput.Blink
	case "Pedido musical":
		m.commentInput = textinput.New()
		if fresh, err := m.engine.Guest(m.guest.ID); err == nil {
			m.commentInput.SetValue(fresh.MusicComment)
		}
		m.commentInput.Focus()
		m.status = ""
		m.view = CommentView
		return textinput.Blink
	case "Playlist":
		return m.loadSongs()
	case "Tendencias":
		return m.loadTrends()
	}
	return nil
}

// reloadCurrentView refreshes the data behind whatever list is on screen.
func (m *Model) reloadCurrentView() tea.Cmd {
	switch m.view {
	case SeatingView:
		return m.loadSeating()
	case WishlistView:
		return m.loadWishlist()
	case PlaylistView:
		return m.loadSongs()
	case TrendsView:
		return m.loadTrends()
	}
	return nil
}

// reloadForCollection refreshes the open view when the changed collection
// backs it. Changes to unrelated collections are ignored.
func (m *Model) reloadForCollection(collection string) tea.Cmd {
	switch {
	case collection == "users" && m.view == SeatingView:
		return m.loadSeating()
	case collection == "wishlist" && m.view == WishlistView:
		return m.loadWishlist()
	case collection == "songs" && m.view == PlaylistView:
		return m.loadSongs()
	case collection == "prefs" && m.view == TrendsView:
		return m.loadTrends()
	}
	return nil
}

func (m *Model) login(name string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.engine.Login(name)
		return loggedInMsg{user: user, err: err}
	}
}

func (m *Model) suggest(input string) tea.Cmd {
	return func() tea.Msg {
		names, _ := m.engine.SuggestNames(input, 3)
		return suggestionsMsg{names: names}
	}
}

func (m *Model) loadSeating() tea.Cmd {
	return func() tea.Msg {
		seating, err := m.engine.Seating()
		return seatingMsg{seating: seating, err: err}
	}
}

func (m *Model) loadWishlist() tea.Cmd {
	return func() tea.Msg {
		items, err := m.engine.Wishlist()
		if err != nil {
			return wishlistMsg{err: err}
		}
		guests, err := m.engine.Guests()
		return wishlistMsg{items: items, guests: guests, err: err}
	}
}

func (m *Model) loadSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.engine.Songs()
		return songsMsg{songs: songs, err: err}
	}
}

func (m *Model) loadTrends() tea.Cmd {
	return func() tea.Msg {
		trends, err := m.engine.GenreTrends(5)
		return trendsMsg{trends: trends, err: err}
	}
}

func (m *Model) action(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{err: fn()}
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case event := <-m.events:
			return collectionChangedMsg(event)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m *Model) waitForSearchResult() tea.Cmd {
	return func() tea.Msg {
		select {
		case result := <-m.search.Results():
			return searchResultMsg(result)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Mis 18 · ¿Quién sos?")

	suggestions := ""
	for _, name := range m.suggestions {
		suggestions += fmt.Sprintf("\n  %s", styles.help.Render(name))
	}

	status := ""
	if m.status != "" {
		status = "\n\n" + styles.warn.Render(m.status)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n%s%s%s\n\n%s", title, m.nameInput.View(), suggestions, status, helpView)
}

func (m *Model) renderList(l *list.Model) string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", l.View(), helpView)
}

func (m *Model) renderSeating() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.leave, m.keys.back, m.keys.quit})
	status := ""
	if m.status != "" {
		status = "\n" + styles.warn.Render(m.status)
	}
	return fmt.Sprintf("%s%s\n\n%s", m.tableList.View(), status, helpView)
}

func (m *Model) renderWishlist() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	status := ""
	if m.status != "" {
		status = "\n" + styles.warn.Render(m.status)
	}
	return fmt.Sprintf("%s%s\n\n%s", m.wishList.View(), status, helpView)
}

func (m *Model) renderMusic() string {
	title := styles.title.Render("Buscar canciones")

	hits := ""
	for i, song := range m.searchHits {
		hits += fmt.Sprintf("\n%d. %s - %s [%s]", i+1, song.Artist, song.Title, song.Platform)
	}
	if hits != "" {
		hits += "\n\n" + styles.help.Render("enter sugiere la primera canción")
	}

	status := ""
	if m.status != "" {
		status = "\n\n" + styles.warn.Render(m.status)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s%s%s\n\n%s", title, m.searchInput.View(), hits, status, helpView)
}

func (m *Model) renderComment() string {
	title := styles.title.Render("Pedido musical")
	hint := styles.help.Render("Se guarda solo cuando dejás de escribir")

	status := ""
	if m.status != "" {
		status = "\n\n" + styles.warn.Render(m.status)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s%s\n\n%s", title, m.commentInput.View(), hint, status, helpView)
}

func (m *Model) renderTrends() string {
	title := styles.title.Render("Géneros más pedidos")

	body := ""
	if len(m.trends) == 0 {
		body = styles.help.Render("Todavía no hay votos")
	}
	for i, trend := range m.trends {
		bar := ""
		for n := 0; n < trend.Value; n++ {
			bar += "█"
		}
		body += fmt.Sprintf("%d. %-12s %s %d\n", i+1, trend.Name, styles.ok.Render(bar), trend.Value)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s", title, body, helpView)
}
