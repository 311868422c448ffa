package fish

// preamble is the fixed head of the generated script: one dynamic
// completion provider per recognized keyword plus the __fish_stg_tags
// helper feeding __fish_stg_commit. Provider names are __fish_stg_ plus
// the keyword, verbatim; renaming any of them breaks scripts already
// installed by users.
const preamble = `# Fish shell completion for StGit (stg)
#
# To use, copy this file to one of the paths in $fish_complete_path, e.g.:
#
#   ~/.config/fish/completions
#
# This file is autogenerated.

function __fish_stg_all_branches
    command git for-each-ref --format='%(refname)' \
        refs/heads/ refs/remotes/ 2>/dev/null \
        | string replace -r '^refs/heads/(.*)$' '$1\tLocal Branch' \
        | string replace -r '^refs/remotes/(.*)$' '$1\tRemote Branch'
end

function __fish_stg_stg_branches
    command stg branch --list 2>/dev/null \
        | string match -r ". s.\t\S+" \
        | string replace -r ". s.\t" ""
end

function __fish_stg_applied_patches
    command stg series --noprefix --applied 2>/dev/null
end

function __fish_stg_other_applied_patches
    set -l top (command stg top 2>/dev/null)
    command stg series --noprefix --applied 2>/dev/null \
        | string match --invert "$top"
end

function __fish_stg_unapplied_patches
    command stg series --noprefix --unapplied 2>/dev/null
end

function __fish_stg_hidden_patches
    command stg series --noprefix --hidden 2>/dev/null
end

function __fish_stg_tags
    command git tag --sort=-creatordate 2>/dev/null
end

function __fish_stg_commit
    __fish_stg_all_branches __fish_stg_tags
end

function __fish_stg_conflicting_files
    command git ls-files --unmerged \
        | string replace -rf '^.*\t(.*)$' '$1' \
        | sort -u
end

function __fish_stg_dirty_files
    command git diff-index --name-only HEAD 2>/dev/null
end

function __fish_stg_unknown_files
    command git ls-files --others --exclude-standard 2>/dev/null
end

function __fish_stg_known_files
    command git ls-files 2>/dev/null
end

function __fish_stg_mail_aliases
    command git config --name-only --get-regexp "^mail\.alias\." \
    | cut -d. -f 3
end`

// isAliasFunc takes the space-joined alias names as its only format
// argument; they become the case labels of the switch.
const isAliasFunc = `
function __fish_stg_is_alias
    set --local tokens (commandline -opc) (commandline -ct)
    if test "$tokens[1]" = "stg"
        switch "$tokens[2]"
            case %s
                return 0
            case '*'
                return 1
        end
    end
end`

const completeAliasHead = `
function __fish_stg_complete_alias
    set --local tokens (commandline -opc) (commandline -ct)
    set --local cmd "$tokens[2]"
    set --erase tokens[1 2]
    switch "$cmd"`

const completeAliasTail = `    end
    complete -C"$tokens"
end
`
