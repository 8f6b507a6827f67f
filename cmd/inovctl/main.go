package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/inovira/inovira/internal/i18n"
	"github.com/inovira/inovira/internal/prefs"
	"github.com/inovira/inovira/internal/profile"
	"github.com/inovira/inovira/internal/store"
)

// inovctl inspects and edits a profile's stored preferences without
// starting the TUI.
func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	name := profile.Resolve(*profileFlag)
	if err := profile.ValidateName(name); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	if err := profile.EnsureDir(name); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	db, err := store.Open(profile.DBPath(name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: open profile db: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	if _, err := db.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: migrate: %v\n", err)
		os.Exit(1)
	}

	switch args[0] {
	case "prefs":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: inovctl prefs <list|get|set|reset> ...")
			os.Exit(1)
		}
		cmdPrefs(db, name, args[1:], *jsonFlag)
	case "langs":
		cmdLangs(*jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: inovctl [--profile <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  prefs list         Show all stored preferences")
	fmt.Fprintln(os.Stderr, "  prefs get <key>    Show one preference")
	fmt.Fprintln(os.Stderr, "  prefs set <k> <v>  Set a preference")
	fmt.Fprintln(os.Stderr, "  prefs reset        Delete all stored preferences")
	fmt.Fprintln(os.Stderr, "  langs              List supported languages")
}

func cmdPrefs(db *store.DB, profileName string, args []string, jsonOut bool) {
	switch args[0] {
	case "list":
		// Load through the prefs store so defaults and fallbacks apply.
		s, err := prefs.New(db, nil, nil)
		if err != nil {
			fail(err)
		}
		out := map[string]string{
			"theme":       string(s.Theme()),
			"post_layout": string(s.Layout()),
			"language":    string(s.Language()),
		}
		if jsonOut {
			outputJSON(out)
			return
		}
		bold := color.New(color.Bold)
		_, _ = bold.Printf("Profile: %s\n", profileName)
		fmt.Printf("  theme:       %s\n", out["theme"])
		fmt.Printf("  post_layout: %s\n", out["post_layout"])
		fmt.Printf("  language:    %s\n", out["language"])

	case "get":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: inovctl prefs get <key>")
			os.Exit(1)
		}
		v, ok, err := db.GetPref(args[1])
		if err != nil {
			fail(err)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "error: %q not set\n", args[1])
			os.Exit(1)
		}
		fmt.Println(v)

	case "set":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: inovctl prefs set <key> <value>")
			os.Exit(1)
		}
		s, err := prefs.New(db, nil, nil)
		if err != nil {
			fail(err)
		}
		key, value := args[1], args[2]
		switch key {
		case "theme":
			err = s.SetTheme(prefs.Theme(value))
		case "post_layout":
			err = s.SetLayout(prefs.Layout(value))
		case "language":
			err = s.SetLanguage(i18n.Lang(value))
		default:
			fmt.Fprintf(os.Stderr, "error: unknown preference %q\n", key)
			os.Exit(1)
		}
		if err != nil {
			fail(err)
		}
		color.Green("ok")

	case "reset":
		for _, key := range []string{"theme", "post_layout", "language"} {
			if err := db.DeletePref(key); err != nil {
				fail(err)
			}
		}
		color.Green("ok")

	default:
		fmt.Fprintf(os.Stderr, "unknown prefs command: %s\n", args[0])
		os.Exit(1)
	}
}

func cmdLangs(jsonOut bool) {
	langs := i18n.Supported()
	if jsonOut {
		outputJSON(langs)
		return
	}
	for _, l := range langs {
		fmt.Printf("%s  %s\n", l, i18n.Name(l))
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
