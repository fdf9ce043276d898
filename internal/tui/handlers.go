package tui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/paddyterm/internal/command"
	"github.com/muurk/paddyterm/internal/content"
	"github.com/muurk/paddyterm/internal/logging"
	"github.com/muurk/paddyterm/internal/pane"
)

// registerHandlers installs the LOAD_PAGE and LOAD_TAB handlers, closed over
// the pane registry and the content source.
func registerHandlers(bus *command.Bus, reg *pane.Registry, src content.Source) {
	bus.Register(command.LoadPageName, func(cmd command.Command) error {
		return loadPage(bus, reg, src, cmd.(command.LoadPage).Page)
	})
	bus.Register(command.LoadTabName, func(cmd command.Command) error {
		c := cmd.(command.LoadTab)
		if !reg.ContentList().ShowTab(c.TabID, c.PageInfo) {
			logging.Warn("Tab not on the loaded page", zap.Int("tab", c.TabID))
		}
		return nil
	})
	bus.Observe(func(cmd command.Command, err error) {
		switch c := cmd.(type) {
		case command.LoadPage:
			logging.LogCommand(c.Name(), err, zap.String("page", c.Page))
		case command.LoadTab:
			logging.LogCommand(c.Name(), err, zap.Int("tab", c.TabID))
		default:
			logging.LogCommand(c.Name(), err)
		}
	})
}

// loadPage fetches a page and shows it. The tab strip is replaced before the
// content list, so a page whose tabs cannot be laid out leaves both panes as
// they were.
func loadPage(bus command.Dispatcher, reg *pane.Registry, src content.Source, pageID string) error {
	page, err := src.LoadPage(pageID)
	var unknown *content.UnknownPageError
	if errors.As(err, &unknown) {
		// Page identifiers come from the fixed catalog.
		panic(fmt.Sprintf("tui: %v", err))
	}
	if err != nil {
		return err
	}

	tab, hasTab := page.InitialTab()
	if err := reg.TabStrip().SetTabs(page.ID, page.Info, pane.TabItems(page), tab, hasTab); err != nil {
		return err
	}

	list := reg.ContentList()
	list.SetPage(page)
	if !hasTab {
		list.ShowTab(0, page.Info)
		return nil
	}
	return bus.Dispatch(command.LoadTab{TabID: tab, PageInfo: page.Info})
}
