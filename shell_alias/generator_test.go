package shell_alias

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

func TestShellAlias(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Shell Alias Suite")
}

var _ = Describe("Shell Alias Generator", func() {
	var (
		generator    Generator
		testAliasMap map[string][]string
	)

	BeforeEach(func() {
		generator = NewGenerator()
		testAliasMap = map[string][]string{
			"plan":   {"cbp", "cbd-plan"},
			"list":   {"cbl", "cbd-list"},
			"search": {"cbs", "cbd-search"},
		}
	})

	Describe("GenerateBash", func() {
		It("should generate bash function signatures", func() {
			result := generator.GenerateBash(testAliasMap)

			expectedFunctions := []string{
				"function cbp",
				"function cbd-plan",
				"function cbl",
				"function cbd-list",
				"function cbs",
				"function cbd-search",
			}

			for _, expected := range expectedFunctions {
				assert.Contains(GinkgoT(), result, expected, "Expected bash output to contain function signature")
			}
		})

		It("should generate completion wiring", func() {
			result := generator.GenerateBash(testAliasMap)

			expectedCompletions := []string{
				"complete -F __start_cbd cbp",
				"complete -F __start_cbd cbl",
				"complete -F __start_cbd cbs",
			}

			for _, expected := range expectedCompletions {
				assert.Contains(GinkgoT(), result, expected, "Expected bash output to contain completion wiring")
			}
		})

		It("should include guard clause", func() {
			result := generator.GenerateBash(testAliasMap)
			assert.Contains(GinkgoT(), result, "command -v cbd > /dev/null || return 0", "Expected bash output to contain guard clause")
		})
	})

	Describe("GenerateZsh", func() {
		It("should generate zsh function signatures", func() {
			result := generator.GenerateZsh(testAliasMap)

			expectedFunctions := []string{
				"cbp()",
				"cbd-plan()",
				"cbl()",
				"cbd-list()",
				"cbs()",
				"cbd-search()",
			}

			for _, expected := range expectedFunctions {
				assert.Contains(GinkgoT(), result, expected, "Expected zsh output to contain function signature")
			}
		})

		It("should generate completion wiring", func() {
			result := generator.GenerateZsh(testAliasMap)

			expectedCompletions := []string{
				"compdef _cbd cbp",
				"compdef _cbd cbl",
				"compdef _cbd cbs",
			}

			for _, expected := range expectedCompletions {
				assert.Contains(GinkgoT(), result, expected, "Expected zsh output to contain completion wiring")
			}
		})

		It("should include guard clause", func() {
			result := generator.GenerateZsh(testAliasMap)
			assert.Contains(GinkgoT(), result, "(( $+commands[cbd] )) || return", "Expected zsh output to contain guard clause")
		})
	})

	Describe("GenerateFish", func() {
		It("should generate fish function signatures", func() {
			result := generator.GenerateFish(testAliasMap)

			expectedFunctions := []string{
				"function cbp",
				"function cbd-plan",
				"function cbl",
			}

			for _, expected := range expectedFunctions {
				assert.Contains(GinkgoT(), result, expected, "Expected fish output to contain function signature")
			}
		})

		It("should generate completion wiring", func() {
			result := generator.GenerateFish(testAliasMap)

			assert.Contains(GinkgoT(), result, "complete -c cbp -w cbd", "Expected fish output to contain completion wiring")
		})
	})

	Describe("GenerateNushell", func() {
		It("should generate extern declarations and definitions", func() {
			result := generator.GenerateNushell(testAliasMap)

			assert.Contains(GinkgoT(), result, "export extern \"cbp\"", "Expected nushell output to contain extern declaration")
			assert.Contains(GinkgoT(), result, "export def cbp", "Expected nushell output to contain function definition")
			assert.Contains(GinkgoT(), result, "cbd plan $args", "Expected nushell output to delegate to cbd")
		})
	})

	Describe("GeneratePowerShell", func() {
		It("should generate functions with completion registration", func() {
			result := generator.GeneratePowerShell(testAliasMap)

			assert.Contains(GinkgoT(), result, "function cbp {", "Expected powershell output to contain function")
			assert.Contains(GinkgoT(), result, "Register-ArgumentCompleter -CommandName 'cbp'", "Expected powershell output to contain completion registration")
		})

		It("should include guard clause", func() {
			result := generator.GeneratePowerShell(testAliasMap)
			assert.Contains(GinkgoT(), result, "Get-Command cbd -ErrorAction SilentlyContinue", "Expected powershell output to contain guard clause")
		})
	})
})
