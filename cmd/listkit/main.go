package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"listkit/internal/theme"
	"listkit/list"
)

// appModel wraps the list so it satisfies tea.Model for the demo program.
type appModel struct {
	list list.Model
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width, size.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	return m.list.View()
}

func main() {
	themePath := flag.String("theme", theme.DefaultPath(), "path to a TOML theme file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("listkit.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	themeCfg, err := theme.Load(*themePath)
	if err != nil {
		log.Printf("Error loading theme: %v", err)
		themeCfg = &theme.Config{}
	}

	items := []list.Item{
		list.NewDefaultItem("Pocky", "Expensive"),
		list.NewDefaultItem("Ramen", "Cheap and delicious"),
		list.NewDefaultItem("Bitter melon", "It's actually good"),
		list.NewDefaultItem("Sprouts", "Good for you"),
		list.NewDefaultItem("Jasmine rice", "The pantry staple"),
		list.NewDefaultItem("Gyoza", "Fry them up"),
		list.NewDefaultItem("Sesame oil", "A little goes a long way"),
		list.NewDefaultItem("Soy sauce", "The essential"),
		list.NewDefaultItem("Nutella", "It's spreadable"),
		list.NewDefaultItem("Mango", "Peak fruit"),
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Groceries"
	l.Styles = themeCfg.Styles()
	l.SetStatusBarItemName("grocery", "groceries")

	p := tea.NewProgram(appModel{list: l}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
