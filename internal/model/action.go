package model

// Action selects which lsnim/nim command path an invocation takes.
type Action string

const (
	// ActionShow lists NIM resource objects via lsnim.
	ActionShow Action = "show"
	// ActionCreate defines a NIM resource object on the master server.
	ActionCreate Action = "create"
	// ActionRemove deletes a NIM resource object by name.
	ActionRemove Action = "remove"
)

// ParseAction maps an action string to its Action, accepting the legacy
// present/absent spellings used by Ansible-style task files.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "show":
		return ActionShow, true
	case "create", "present":
		return ActionCreate, true
	case "remove", "absent":
		return ActionRemove, true
	}
	return "", false
}
