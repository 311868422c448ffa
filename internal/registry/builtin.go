package registry

import "fmt"

// The builtin table mirrors the stg command set. Entries and command
// records live side by side; Entry.Module is the lookup key ("import"
// resolves through "imprt").

type builtinCommand struct {
	entry Entry
	cmd   Command
}

// branchOpt is the -b/--branch option shared by many commands.
func branchOpt() Option {
	return Option{
		Short: "b", Long: "branch",
		Help: "use BRANCH instead of the default branch",
		Args: []Arg{Keyword("stg_branches")},
	}
}

var builtinTable = []builtinCommand{
	{
		entry: Entry{Name: "branch", Module: "branch", Category: "stack"},
		cmd: Command{
			Name: "branch",
			Help: "Branch operations: switch, list, create, rename, delete, ...",
			Args: []Arg{Keyword("stg_branches")},
			Options: []Option{
				{Short: "l", Long: "list", Help: "list the branches contained in this repository"},
				{Short: "c", Long: "create", Help: "create a new development branch", Args: []Arg{Keyword("all_branches")}},
				{Long: "clone", Help: "clone the contents of the current branch"},
				{Long: "rename", Help: "rename an existing development branch"},
				{Long: "delete", Help: "delete an existing development branch", Args: []Arg{Keyword("stg_branches")}},
				{Long: "cleanup", Help: "clean up the StGit metadata for a branch"},
				{Short: "d", Long: "description", Help: "set the branch description"},
				{Long: "force", Help: "force a delete when the series is not empty"},
			},
		},
	},
	{
		entry: Entry{Name: "clean", Module: "clean", Category: "stack"},
		cmd: Command{
			Name: "clean",
			Help: "Delete the empty patches in the series",
			Options: []Option{
				{Short: "a", Long: "applied", Help: "delete the empty applied patches"},
				{Short: "u", Long: "unapplied", Help: "delete the empty unapplied patches"},
			},
		},
	},
	{
		entry: Entry{Name: "clone", Module: "clone", Category: "repo"},
		cmd: Command{
			Name: "clone",
			Help: "Make a local clone of a remote repository",
			Args: []Arg{Path{Kind: PathRepo}, Path{Kind: PathDir}},
		},
	},
	{
		entry: Entry{Name: "commit", Module: "commit", Category: "stack"},
		cmd: Command{
			Name: "commit",
			Help: "Permanently store the applied patches into the stack base",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "n", Long: "number", Help: "commit the specified number of patches"},
				{Short: "a", Long: "all", Help: "commit all the applied patches"},
			},
		},
	},
	{
		entry: Entry{Name: "delete", Module: "delete", Category: "patch"},
		cmd: Command{
			Name: "delete",
			Help: "Delete patches",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Long: "spill", Help: "spill patch contents to worktree and index"},
				{Short: "t", Long: "top", Help: "delete the top patch"},
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "diff", Module: "diff", Category: "wc"},
		cmd: Command{
			Name: "diff",
			Help: "Show the tree diff",
			Args: []Arg{Keyword("known_files")},
			Options: []Option{
				{Short: "r", Long: "range", Help: "show the diff between revisions", Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}}},
				{Short: "s", Long: "stat", Help: "show the stat instead of the diff"},
				{Short: "O", Long: "diff-opts", Help: "extra options to pass to \"git diff\""},
			},
		},
	},
	{
		entry: Entry{Name: "edit", Module: "edit", Category: "patch"},
		cmd: Command{
			Name: "edit",
			Help: "Edit a patch description or diff",
			Args: []Arg{Keyword("applied_patches"), Keyword("unapplied_patches"), Keyword("hidden_patches")},
			Options: []Option{
				{Short: "d", Long: "diff", Help: "edit the patch diff"},
				{Short: "e", Long: "edit", Help: "invoke interactive editor"},
				{Short: "m", Long: "message", Help: "use MESSAGE instead of invoking the editor", Args: []Arg{Values{}}},
				{Short: "f", Long: "file", Help: "use FILE instead of invoking the editor", Args: []Arg{Path{Kind: PathFile}}},
				{Long: "sign", Help: "add a Signed-off-by line"},
				{Long: "ack", Help: "add an Acked-by line"},
				{Long: "author", Help: "set the author details"},
			},
		},
	},
	{
		entry: Entry{Name: "export", Module: "export", Category: "patch"},
		cmd: Command{
			Name: "export",
			Help: "Export patches to a directory",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "d", Long: "dir", Help: "export patches to DIRECTORY instead of the default", Args: []Arg{Path{Kind: PathDir}}},
				{Short: "p", Long: "patch", Help: "append .patch to the patch names"},
				{Short: "n", Long: "numbered", Help: "prefix the patch names with order numbers"},
				{Short: "t", Long: "template", Help: "use FILE as a template", Args: []Arg{Path{Kind: PathFile}}},
				{Short: "s", Long: "stdout", Help: "dump the patches to the standard output"},
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "files", Module: "files", Category: "patch"},
		cmd: Command{
			Name: "files",
			Help: "Show the files modified by a patch (or the current patch)",
			Args: []Arg{Keyword("applied_patches"), Keyword("unapplied_patches"), Keyword("hidden_patches")},
			Options: []Option{
				{Short: "s", Long: "stat", Help: "show the diff stat"},
				{Long: "bare", Help: "bare file names (useful for scripting)"},
			},
		},
	},
	{
		entry: Entry{Name: "float", Module: "float", Category: "stack"},
		cmd: Command{
			Name: "float",
			Help: "Push patches to the top, even if applied",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "s", Long: "series", Help: "rearrange according to the series FILE", Args: []Arg{Path{Kind: PathFile}}},
				{Short: "k", Long: "keep", Help: "keep the local changes"},
			},
		},
	},
	{
		entry: Entry{Name: "fold", Module: "fold", Category: "patch"},
		cmd: Command{
			Name: "fold",
			Help: "Integrate a GNU diff patch into the current patch",
			Args: []Arg{Path{Kind: PathFile}},
			Options: []Option{
				{Short: "t", Long: "threeway", Help: "perform a three-way merge with the current patch"},
				{Short: "b", Long: "base", Help: "use BASE instead of HEAD for file importing", Args: []Arg{Keyword("commit")}},
				{Short: "p", Long: "strip", Help: "remove N leading slashes from diff paths"},
			},
		},
	},
	{
		entry: Entry{Name: "goto", Module: "goto", Category: "stack"},
		cmd: Command{
			Name: "goto",
			Help: "Push or pop patches to the given one",
			Args: []Arg{Keyword("other_applied_patches"), Keyword("unapplied_patches")},
			Options: []Option{
				{Short: "k", Long: "keep", Help: "keep the local changes"},
				{Short: "m", Long: "merged", Help: "check for patches merged upstream"},
			},
		},
	},
	{
		entry: Entry{Name: "hide", Module: "hide", Category: "stack"},
		cmd: Command{
			Name: "hide",
			Help: "Hide a patch in the series",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "id", Module: "id", Category: "repo"},
		cmd: Command{
			Name: "id",
			Help: "Print the git hash value of a StGit reference",
			Args: []Arg{Keyword("commit")},
		},
	},
	{
		entry: Entry{Name: "import", Module: "imprt", Category: "patch"},
		cmd: Command{
			Name: "import",
			Help: "Import a GNU diff file as a new patch",
			Args: []Arg{Path{Kind: PathFile}},
			Options: []Option{
				{Short: "m", Long: "mail", Help: "import a patch from a standard e-mail file"},
				{Short: "M", Long: "mbox", Help: "import a series of patches from an mbox file"},
				{Short: "s", Long: "series", Help: "import a series of patches"},
				{Short: "u", Long: "url", Help: "import a patch from a URL"},
				{Short: "n", Long: "name", Help: "use NAME as the patch name"},
				{Short: "p", Long: "strip", Help: "remove N leading slashes from diff paths"},
				{Short: "i", Long: "ignore", Help: "ignore the applied patches in the series"},
				{Long: "replace", Help: "replace the unapplied patches in the series"},
				{Short: "b", Long: "base", Help: "use BASE instead of HEAD for file importing", Args: []Arg{Keyword("commit")}},
			},
		},
	},
	{
		entry: Entry{Name: "init", Module: "init", Category: "stack"},
		cmd: Command{
			Name: "init",
			Help: "Initialise the current branch for use with StGit",
		},
	},
	{
		entry: Entry{Name: "log", Module: "log", Category: "patch"},
		cmd: Command{
			Name: "log",
			Help: "Display the patch changelog",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "d", Long: "diff", Help: "show the refresh diffs"},
				{Short: "n", Long: "number", Help: "limit the output to NUMBER commits"},
				{Short: "f", Long: "full", Help: "show the full commit ids"},
				{Short: "g", Long: "graphical", Help: "run gitk instead of printing"},
				{Long: "clear", Help: "clear the log history"},
			},
		},
	},
	{
		entry: Entry{Name: "mail", Module: "mail", Category: "patch"},
		cmd: Command{
			Name: "mail",
			Help: "Send a patch or patch series by e-mail",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "a", Long: "all", Help: "e-mail all the applied patches"},
				{Long: "to", Help: "add TO to the To: list", Args: []Arg{Keyword("mail_aliases")}},
				{Long: "cc", Help: "add CC to the Cc: list", Args: []Arg{Keyword("mail_aliases")}},
				{Long: "bcc", Help: "add BCC to the Bcc: list", Args: []Arg{Keyword("mail_aliases")}},
				{Long: "auto", Help: "automatically cc the patch signers"},
				{Short: "e", Long: "edit-patches", Help: "edit each patch before sending"},
				{Short: "t", Long: "template", Help: "use FILE as the message template", Args: []Arg{Path{Kind: PathFile}}},
				{Long: "smtp-server", Help: "the address of the SMTP server to use"},
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "new", Module: "new", Category: "patch"},
		cmd: Command{
			Name: "new",
			Help: "Create a new, empty patch",
			Options: []Option{
				{Short: "m", Long: "message", Help: "use MESSAGE as the patch description", Args: []Arg{Values{}}},
				{Short: "f", Long: "file", Help: "use FILE instead of invoking the editor", Args: []Arg{Path{Kind: PathFile}}},
				{Long: "author", Help: "set the author details"},
				{Long: "sign", Help: "add a Signed-off-by line"},
				{Long: "ack", Help: "add an Acked-by line"},
			},
		},
	},
	{
		entry: Entry{Name: "next", Module: "next", Category: "stack"},
		cmd: Command{
			Name: "next",
			Help: "Print the name of the next patch",
			Options: []Option{
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "patches", Module: "patches", Category: "wc"},
		cmd: Command{
			Name: "patches",
			Help: "Show the applied patches modifying a file",
			Args: []Arg{Keyword("known_files")},
			Options: []Option{
				{Short: "d", Long: "diff", Help: "show the diff for the given files"},
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "pick", Module: "pick", Category: "patch"},
		cmd: Command{
			Name: "pick",
			Help: "Import a patch from a different branch or a commit object",
			Args: []Arg{Keyword("commit")},
			Options: []Option{
				{Short: "n", Long: "name", Help: "use NAME as the patch name"},
				{Short: "B", Long: "ref-branch", Help: "pick patches from BRANCH", Args: []Arg{Keyword("stg_branches")}},
				{Short: "r", Long: "revert", Help: "revert the given commit object"},
				{Short: "p", Long: "parent", Help: "use COMMIT as parent", Args: []Arg{Keyword("commit")}},
				{Short: "x", Long: "expose", Help: "append the imported commit id to the patch log"},
				{Long: "fold", Help: "fold the commit object into the current patch"},
				{Long: "update", Help: "like fold but only update the current patch files"},
			},
		},
	},
	{
		entry: Entry{Name: "prev", Module: "prev", Category: "stack"},
		cmd: Command{
			Name: "prev",
			Help: "Print the name of the previous patch",
			Options: []Option{
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "pull", Module: "pull", Category: "repo"},
		cmd: Command{
			Name: "pull",
			Help: "Pull changes from a remote repository",
			Args: []Arg{Path{Kind: PathRepo}},
			Options: []Option{
				{Short: "n", Long: "nopush", Help: "do not push the patches back after pulling"},
				{Short: "m", Long: "merged", Help: "check for patches merged upstream"},
			},
		},
	},
	{
		entry: Entry{Name: "push", Module: "push", Category: "stack"},
		cmd: Command{
			Name: "push",
			Help: "Push one or more patches onto the stack",
			Args: []Arg{Keyword("unapplied_patches")},
			Options: []Option{
				{Short: "a", Long: "all", Help: "push all the unapplied patches"},
				{Short: "n", Long: "number", Help: "push the specified number of patches"},
				{Long: "reverse", Help: "push the patches in reverse order"},
				{Long: "set-tree", Help: "push the patch with the original tree"},
				{Short: "m", Long: "merged", Help: "check for patches merged upstream"},
				{Short: "k", Long: "keep", Help: "keep the local changes"},
			},
		},
	},
	{
		entry: Entry{Name: "rebase", Module: "rebase", Category: "stack"},
		cmd: Command{
			Name: "rebase",
			Help: "Move the stack base to another point in history",
			Args: []Arg{Keyword("commit")},
			Options: []Option{
				{Short: "n", Long: "nopush", Help: "do not push the patches back after rebasing"},
				{Short: "m", Long: "merged", Help: "check for patches merged upstream"},
			},
		},
	},
	{
		entry: Entry{Name: "redo", Module: "redo", Category: "stack"},
		cmd: Command{
			Name: "redo",
			Help: "Undo the last undo operation",
			Options: []Option{
				{Short: "n", Long: "number", Help: "undo the last N undos"},
				{Long: "hard", Help: "discard changes in the index/worktree"},
			},
		},
	},
	{
		entry: Entry{Name: "refresh", Module: "refresh", Category: "patch"},
		cmd: Command{
			Name: "refresh",
			Help: "Generate a new commit for the current patch",
			Args: []Arg{Keyword("dirty_files")},
			Options: []Option{
				{Short: "u", Long: "update", Help: "only update the current patch files"},
				{Short: "i", Long: "index", Help: "refresh from index instead of worktree"},
				{Short: "F", Long: "force", Help: "force refresh even if index is dirty"},
				{Short: "e", Long: "edit", Help: "invoke an editor for the patch description"},
				{Short: "s", Long: "submodules", Help: "include submodules when refreshing patch contents"},
				{Short: "p", Long: "patch", Help: "refresh (applied) PATCH instead of the top patch", Args: []Arg{Keyword("applied_patches")}},
				{Short: "a", Long: "annotate", Help: "annotate the patch log entry"},
				{Long: "sign", Help: "add a Signed-off-by line"},
			},
		},
	},
	{
		entry: Entry{Name: "rename", Module: "rename", Category: "patch"},
		cmd: Command{
			Name: "rename",
			Help: "Rename a patch",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "repair", Module: "repair", Category: "stack"},
		cmd: Command{
			Name: "repair",
			Help: "Fix StGit metadata if branch was modified with git commands",
		},
	},
	{
		entry: Entry{Name: "reset", Module: "reset", Category: "stack"},
		cmd: Command{
			Name: "reset",
			Help: "Reset the patch stack to an earlier state",
			Args: []Arg{Keyword("commit")},
			Options: []Option{
				{Long: "hard", Help: "discard changes in the index/worktree"},
			},
		},
	},
	{
		entry: Entry{Name: "series", Module: "series", Category: "stack"},
		cmd: Command{
			Name: "series",
			Help: "Print the patch series",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "a", Long: "all", Help: "show all patches, including the hidden ones"},
				{Short: "A", Long: "applied", Help: "show the applied patches only"},
				{Short: "U", Long: "unapplied", Help: "show the unapplied patches only"},
				{Short: "H", Long: "hidden", Help: "show the hidden patches only"},
				{Short: "m", Long: "missing", Help: "show patches in BRANCH missing in the current one", Args: []Arg{Keyword("stg_branches")}},
				{Short: "c", Long: "count", Help: "print the number of patches in the series"},
				{Short: "d", Long: "description", Help: "show a short description for each patch"},
				{Long: "author", Help: "show the author name for each patch"},
				{Short: "e", Long: "empty", Help: "check whether patches are empty"},
				{Short: "s", Long: "short", Help: "list just the patches around the topmost patch"},
				{Long: "noprefix", Help: "do not show the patch status prefix"},
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "show", Module: "show", Category: "patch"},
		cmd: Command{
			Name: "show",
			Help: "Show the commit corresponding to a patch",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "a", Long: "applied", Help: "show the applied patches"},
				{Short: "u", Long: "unapplied", Help: "show the unapplied patches"},
				{Short: "s", Long: "stat", Help: "show a diffstat summary instead of the full diff"},
				{Short: "O", Long: "diff-opts", Help: "extra options to pass to \"git show\""},
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "sink", Module: "sink", Category: "stack"},
		cmd: Command{
			Name: "sink",
			Help: "Send patches deeper down the stack",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "n", Long: "nopush", Help: "do not push the patches back after sinking"},
				{Short: "t", Long: "to", Help: "sink the patches below TARGET", Args: []Arg{Keyword("applied_patches")}},
				{Short: "k", Long: "keep", Help: "keep the local changes"},
			},
		},
	},
	{
		entry: Entry{Name: "squash", Module: "squash", Category: "patch"},
		cmd: Command{
			Name: "squash",
			Help: "Squash two or more patches into one",
			Args: []Arg{Keyword("applied_patches")},
			Options: []Option{
				{Short: "n", Long: "name", Help: "use NAME as the new patch name"},
				{Short: "m", Long: "message", Help: "use MESSAGE as the squashed patch description", Args: []Arg{Values{}}},
				{Short: "f", Long: "file", Help: "use FILE instead of invoking the editor", Args: []Arg{Path{Kind: PathFile}}},
			},
		},
	},
	{
		entry: Entry{Name: "sync", Module: "sync", Category: "patch"},
		cmd: Command{
			Name: "sync",
			Help: "Synchronise patches with a branch or a series",
			Args: []Arg{Range{Start: "applied_patches", End: "unapplied_patches"}},
			Options: []Option{
				{Short: "a", Long: "all", Help: "synchronise all the applied patches"},
				{Short: "B", Long: "ref-branch", Help: "synchronise patches with BRANCH", Args: []Arg{Keyword("stg_branches")}},
				{Short: "s", Long: "series", Help: "synchronise patches with the given series FILE", Args: []Arg{Path{Kind: PathFile}}},
			},
		},
	},
	{
		entry: Entry{Name: "top", Module: "top", Category: "stack"},
		cmd: Command{
			Name: "top",
			Help: "Print the name of the top patch",
			Options: []Option{
				branchOpt(),
			},
		},
	},
	{
		entry: Entry{Name: "uncommit", Module: "uncommit", Category: "stack"},
		cmd: Command{
			Name: "uncommit",
			Help: "Turn regular git commits into StGit patches",
			Options: []Option{
				{Short: "n", Long: "number", Help: "uncommit the specified number of commits"},
				{Short: "t", Long: "to", Help: "uncommit to the specified commit", Args: []Arg{Keyword("commit")}},
				{Short: "x", Long: "exclusive", Help: "exclude the commit specified by --to"},
			},
		},
	},
	{
		entry: Entry{Name: "undo", Module: "undo", Category: "stack"},
		cmd: Command{
			Name: "undo",
			Help: "Undo the last operation",
			Options: []Option{
				{Short: "n", Long: "number", Help: "undo the last N commands"},
				{Long: "hard", Help: "discard changes in the index/worktree"},
			},
		},
	},
	{
		entry: Entry{Name: "unhide", Module: "unhide", Category: "stack"},
		cmd: Command{
			Name: "unhide",
			Help: "Unhide a hidden patch",
			Args: []Arg{Keyword("hidden_patches")},
			Options: []Option{
				branchOpt(),
			},
		},
	},
}

// builtinRegistry serves the builtin table through the Registry interface.
type builtinRegistry struct {
	byModule map[string]*Command
}

// Builtin returns the registry of stg's own commands.
func Builtin() Registry {
	r := &builtinRegistry{byModule: make(map[string]*Command, len(builtinTable))}
	for i := range builtinTable {
		r.byModule[builtinTable[i].entry.Module] = &builtinTable[i].cmd
	}
	return r
}

func (r *builtinRegistry) Entries() []Entry {
	out := make([]Entry, 0, len(builtinTable))
	for _, bc := range builtinTable {
		out = append(out, bc.entry)
	}
	return out
}

func (r *builtinRegistry) Lookup(module string) (*Command, error) {
	cmd, ok := r.byModule[module]
	if !ok {
		return nil, fmt.Errorf("no command module %q in the builtin registry", module)
	}
	return cmd, nil
}
