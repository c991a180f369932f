package catalog

import "github.com/gorewood/blockgen/internal/block"

// DefaultLanguage keys the fallback row every kind carries.
const DefaultLanguage = "cpp"

// builtinTemplates is the shipped policy table. Every kind has a
// DefaultLanguage row.
var builtinTemplates = map[block.Kind]map[string]string{
	block.If: {
		"python":        "if condition:\n\t",
		DefaultLanguage: "if (condition) {\n\t\n\t}",
	},
	block.For: {
		"python":        "for i in range(length):\n\t",
		DefaultLanguage: "for (int i = 0; i < length; i++) {\n\t\n\t}",
	},
	block.While: {
		"python":        "while condition:\n\t",
		DefaultLanguage: "while (condition) {\n\t\n\t}",
	},
	block.Switch: {
		DefaultLanguage: "switch (variable) {\n\t\tcase value:\n\t\t\tbreak;\n\t\tdefault:\n\t\t\tbreak;\n\t}",
	},
	block.TryCatch: {
		"python":        "try:\n\tcode\nexcept Exception as e:\n\tpass",
		DefaultLanguage: "try {\n\t\tcode\n\t} catch (const std::exception& e) {\n\t\n\t}",
	},
}
