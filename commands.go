package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"class-notes/config"
	"class-notes/config/setup"
	"class-notes/models"
	"class-notes/services"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	noteClass  string
	noteFields []string
	exportFmt  string
)

// withNotes opens the database for one command and closes it afterwards
func withNotes(fn func(ns *services.NoteService) error) error {
	logger := slog.Default()
	cfg := config.AppConfig

	db, err := setup.InitDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer setup.Shutdown(db, logger)

	application, err := setup.InitApp(db, cfg, logger)
	if err != nil {
		return err
	}

	return fn(application.Notes)
}

// parseFields turns repeated key=value flags into a field map. The value may contain '='.
func parseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("field %q must be key=value", pair)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("field %q given twice", key)
		}
		fields[key] = value
	}
	return fields, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}

// noteDoc is the printed form of a note
type noteDoc struct {
	ID     int64             `yaml:"id"`
	Class  string            `yaml:"class"`
	Fields map[string]string `yaml:"fields"`
}

func printNotes(notes ...models.Note) error {
	docs := make([]noteDoc, 0, len(notes))
	for _, n := range notes {
		docs = append(docs, noteDoc{ID: n.ID, Class: n.ClassName, Fields: n.Fields})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	if len(docs) == 1 {
		return enc.Encode(docs[0])
	}
	return enc.Encode(docs)
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the classes and how many notes each has",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNotes(func(ns *services.NoteService) error {
			classes, err := ns.Classes()
			if err != nil {
				return err
			}
			for _, class := range classes {
				fmt.Printf("%-24s %d\n", class.Name, class.Count)
			}
			return nil
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note to a class",
	Example: `  class-notes add --class "Class 3" --field note="Read chapter 2" --field date=2024-09-01
  NOTES_SCHEMA=titled class-notes add --class "Class 3" --field title=Algebra --field content=Quadratics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseFields(noteFields)
		if err != nil {
			return err
		}
		return withNotes(func(ns *services.NoteService) error {
			note, err := ns.Add(noteClass, fields)
			if err != nil {
				return err
			}
			fmt.Printf("Note %d added for %s\n", note.ID, note.ClassName)
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the notes of a class",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNotes(func(ns *services.NoteService) error {
			notes, err := ns.List(noteClass)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Printf("No notes found for %s\n", noteClass)
				return nil
			}
			return printNotes(notes...)
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withNotes(func(ns *services.NoteService) error {
			note, err := ns.Get(id)
			if err != nil {
				return err
			}
			return printNotes(*note)
		})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Overwrite the fields of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		fields, err := parseFields(noteFields)
		if err != nil {
			return err
		}
		return withNotes(func(ns *services.NoteService) error {
			if err := ns.Update(id, noteClass, fields); err != nil {
				return err
			}
			fmt.Printf("Note %d updated\n", id)
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withNotes(func(ns *services.NoteService) error {
			if err := ns.Delete(id); err != nil {
				return err
			}
			fmt.Printf("Note %d deleted\n", id)
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the notes of a class to a .docx or .pdf file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNotes(func(ns *services.NoteService) error {
			result, err := ns.Export(noteClass, exportFmt)
			if err != nil {
				return err
			}
			fmt.Println(result.Path)
			if result.FallbackFont {
				fmt.Fprintln(os.Stderr, "warning: Unicode font unavailable, non-Latin characters may be missing")
			}
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{addCmd, listCmd, exportCmd} {
		cmd.Flags().StringVarP(&noteClass, "class", "c", "", "Class name")
		cmd.MarkFlagRequired("class")
	}
	updateCmd.Flags().StringVarP(&noteClass, "class", "c", "", "Move the note to this class (dated notes only)")

	for _, cmd := range []*cobra.Command{addCmd, updateCmd} {
		cmd.Flags().StringArrayVarP(&noteFields, "field", "f", nil, "Note field as key=value, repeatable")
		cmd.MarkFlagRequired("field")
	}

	exportCmd.Flags().StringVar(&exportFmt, "format", "", "docx or pdf (defaults to the layout's format)")

	rootCmd.AddCommand(classesCmd, addCmd, listCmd, getCmd, updateCmd, deleteCmd, exportCmd)
}
