package registry

// DynamicKeywords is the closed set of argument keywords that resolve to a
// dynamic-completion provider in the generated script, in the order their
// provider functions are emitted. The set is part of the output contract;
// it is not configurable.
var DynamicKeywords = []string{
	"stg_branches",
	"all_branches",
	"applied_patches",
	"unapplied_patches",
	"hidden_patches",
	"other_applied_patches",
	"commit",
	"conflicting_files",
	"dirty_files",
	"unknown_files",
	"known_files",
	"mail_aliases",
}

// IsDynamicKeyword reports whether name is in the recognized keyword set.
func IsDynamicKeyword(name string) bool {
	for _, k := range DynamicKeywords {
		if k == name {
			return true
		}
	}
	return false
}
