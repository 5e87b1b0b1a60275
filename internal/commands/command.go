// Package commands parses the slash command palette. Input like
// "/add Mop kitchen due:2024-02-01 every:weekly cat:Kitchen pri:high"
// becomes a typed command the app executes through registered handlers.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeGo     Type = "go"
	TypeTheme  Type = "theme"
	TypeExport Type = "export"
	TypeImport Type = "import"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title    string
	Due      string
	Every    string
	Category string
	Priority string
}

type GoArgs struct {
	View string
}

type ThemeArgs struct {
	Name string
}

type ExportArgs struct {
	Path string
}

type ImportArgs struct {
	Path string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Go     *GoArgs
	Theme  *ThemeArgs
	Export *ExportArgs
	Import *ImportArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeGo:
		return parseGo(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeExport:
		return parseExport(input, args)
	case TypeImport:
		return parseImport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	add := AddArgs{}
	titleWords := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "due:"):
			add.Due = strings.TrimSpace(arg[len("due:"):])
		case strings.HasPrefix(lower, "every:"):
			add.Every = strings.ToLower(strings.TrimSpace(arg[len("every:"):]))
		case strings.HasPrefix(lower, "cat:"):
			add.Category = strings.TrimSpace(arg[len("cat:"):])
		case strings.HasPrefix(lower, "pri:"):
			add.Priority = strings.ToLower(strings.TrimSpace(arg[len("pri:"):]))
		default:
			titleWords = append(titleWords, arg)
		}
	}
	add.Title = strings.TrimSpace(strings.Join(titleWords, " "))
	if add.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &add}, nil
}

func parseGo(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "go requires a view name"}
	}
	return Command{Type: TypeGo, Raw: raw, Go: &GoArgs{View: strings.ToLower(args[0])}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires a name"}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: strings.ToLower(args[0])}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	path := ""
	if len(args) > 0 {
		path = strings.Join(args, " ")
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Path: path}}, nil
}

func parseImport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "import requires a file path"}
	}
	return Command{Type: TypeImport, Raw: raw, Import: &ImportArgs{Path: strings.Join(args, " ")}}, nil
}
