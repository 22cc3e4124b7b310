// Package nim holds the core lsnim/nim adapter logic: building command lines
// from resource requests, parsing lsnim listing output into a catalog, and
// classifying command results into operation outcomes. Everything here is pure
// and reentrant; process execution lives in internal/executor.
package nim

import (
	"fmt"
	"strings"

	"github.com/aixadm/nimres/internal/model"
)

const (
	lsnimPath = "/usr/sbin/lsnim"
	nimPath   = "/usr/sbin/nim"
)

// BuildCommand constructs the command line for the requested action. It is a
// pure function: same request, same command. Missing required fields are a
// caller contract violation and are rejected by config validation before this
// point, so the builder never errors.
func BuildCommand(action model.Action, req model.ResourceRequest) string {
	switch action {
	case model.ActionShow:
		return buildShow(req)
	case model.ActionCreate:
		return buildCreate(req)
	case model.ActionRemove:
		return buildRemove(req)
	}
	return ""
}

func buildShow(req model.ResourceRequest) string {
	var b strings.Builder
	b.WriteString(lsnimPath + " -l")

	// Without a type or name the query is restricted to the general
	// resources object class rather than every NIM object.
	if req.ObjectType == "" && req.Name == "" {
		b.WriteString(" -c resources")
	}
	if req.ObjectType != "" {
		b.WriteString(" -t " + req.ObjectType)
	}
	if req.Name != "" {
		b.WriteString(" " + req.Name)
	}

	return b.String()
}

func buildCreate(req model.ResourceRequest) string {
	var b strings.Builder
	b.WriteString(nimPath + " -a server=master -o define")

	if req.ObjectType != "" {
		b.WriteString(" -t " + req.ObjectType)
	}
	// Attribute order follows the request; values pass through verbatim,
	// embedded quotes included.
	for _, attr := range req.Attributes {
		fmt.Fprintf(&b, " -a %s=\"%s\"", attr.Key, attr.Value)
	}
	b.WriteString(" " + req.Name)

	return b.String()
}

func buildRemove(req model.ResourceRequest) string {
	return fmt.Sprintf("%s -o remove %s", nimPath, req.Name)
}
