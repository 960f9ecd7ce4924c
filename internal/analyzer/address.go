package analyzer

import "strings"

// analyzeAddress infers the addressed character's role from names and titles
// present in the text, then checks each honorific against the role
// compatibility table. When no role can be inferred the dimension stays
// neutral: zero correct, zero incorrect. Role inference is keyword-based and
// best-effort.
func (a *Analyzer) analyzeAddress(text string) AddressFeatures {
	f := AddressFeatures{}

	role := a.inferRole(text)
	if role == "" {
		return f
	}
	f.Role = role

	for _, term := range a.stats.HonorificTerms {
		n := strings.Count(text, term)
		if n == 0 {
			continue
		}
		if a.stats.CompatibleHonorific(role, term) {
			f.Correct += n
		} else {
			f.Incorrect += n
		}
	}
	return f
}

// inferRole returns the role tier of the earliest known character name in
// the text. Ties prefer the longer name, then role order, so inference never
// depends on map iteration order.
func (a *Analyzer) inferRole(text string) string {
	bestPos := -1
	bestLen := 0
	bestRole := ""
	for name, role := range a.stats.CharacterRoles {
		pos := strings.Index(text, name)
		if pos < 0 {
			continue
		}
		if bestPos == -1 || pos < bestPos || (pos == bestPos && len(name) > bestLen) ||
			(pos == bestPos && len(name) == bestLen && role < bestRole) {
			bestPos = pos
			bestLen = len(name)
			bestRole = role
		}
	}
	return bestRole
}

// RoleFor exposes role inference for the converter's honorific stage.
func (a *Analyzer) RoleFor(name string) (string, bool) {
	return a.stats.RoleFor(name)
}

// AnalyzeAddress scores the address dimension alone. The converter uses it
// to verify that an honorific rewrite does not worsen the dimension.
func (a *Analyzer) AnalyzeAddress(text string) AddressFeatures {
	return a.analyzeAddress(text)
}
