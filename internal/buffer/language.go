package buffer

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerLanguages maps chroma lexer names onto editor language identifiers.
var lexerLanguages = map[string]string{
	"C++":         "cpp",
	"C":           "c",
	"C#":          "csharp",
	"Python":      "python",
	"Python 2":    "python",
	"Go":          "go",
	"JavaScript":  "javascript",
	"TypeScript":  "typescript",
	"TSX":         "typescriptreact",
	"react":       "javascriptreact",
	"Java":        "java",
	"Kotlin":      "kotlin",
	"Rust":        "rust",
	"Ruby":        "ruby",
	"PHP":         "php",
	"Bash":        "shellscript",
	"Objective-C": "objective-c",
	"Swift":       "swift",
	"plaintext":   "plaintext",
}

// DetectLanguage guesses the language of a file from its name, then from
// its content. It returns "" when neither gives an answer.
func DetectLanguage(path, content string) string {
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return languageID(lexer)
	}
	if content == "" {
		return ""
	}
	if lexer := lexers.Analyse(content); lexer != nil {
		return languageID(lexer)
	}
	return ""
}

func languageID(lexer chroma.Lexer) string {
	name := lexer.Config().Name
	if id, ok := lexerLanguages[name]; ok {
		return id
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
