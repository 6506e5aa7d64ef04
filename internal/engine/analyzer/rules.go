package analyzer

import (
	"regexp"
	"strings"

	"go.trai.ch/sourcerer/internal/core/domain"
)

var (
	diagnosticRe  = regexp.MustCompile(`^\[javac\]\s+(.*?):\d+:\s+error:\s+(.*)`)
	packageRe     = regexp.MustCompile(`^package\s+(.*?)\s+does not exist`)
	classPublicRe = regexp.MustCompile(`^class .*? is public, should be declared in a file named.*`)
	unmappableRe  = regexp.MustCompile(`^unmappable character for encoding\s+(.*)`)
)

const (
	unresolvedMarker  = "impossible to resolve dependencies"
	unresolvedFile    = "ivy.xml"
	unresolvedMessage = "unresolved dependencies"
)

// rule maps a message to an error type when match reports true.
type rule struct {
	match func(msg string) bool
	typ   string
}

func contains(sub string) func(string) bool {
	return func(msg string) bool { return strings.Contains(msg, sub) }
}

func containsAll(subs ...string) func(string) bool {
	return func(msg string) bool {
		for _, s := range subs {
			if !strings.Contains(msg, s) {
				return false
			}
		}
		return true
	}
}

func containsAny(subs ...string) func(string) bool {
	return func(msg string) bool {
		for _, s := range subs {
			if strings.Contains(msg, s) {
				return true
			}
		}
		return false
	}
}

// rules are tried in order; the first match wins. Several patterns overlap,
// so the order is part of the classification.
var rules = []rule{
	{contains("wrong number of type arguments"), "wrong number of type arguments"},
	{contains("cannot be accessed from outside package"), "cannot be accessed from outside package"},
	{contains("is never thrown in body"), "exception is never thrown in body"},
	{contains("cannot be inherited with different arguments"), "class cannot be inherited with different arguments"},
	{contains("is not within bounds of"), "not within bounds"},
	{containsAll("non-static", "static context"), "non-static used in static context"},
	{contains("inherits unrelated defaults for"), "inherits unrelated defaults"},
	{contains("might not have been initialized"), "not initialized"},
	{contains("is already defined in"), "redeclaration"},
	{contains("illegal"), "illegal use"},
	{contains("cannot be accessed from outside the package"), "private class cannot be accessed outside package"},
	{containsAll("no suitable", "found for"), "no suitable definition found"},
	{contains("not allowed here"), "modifier not allowed"},
	{containsAll("required, but", "found"), "mismatched types"},
	{contains("unreported exception"), "unreported exception"},
	{contains("has private access"), "private access error"},
	{contains("cannot access"), "illegal access"},
	{contains("does not take parameters"), "too many parameters"},
	{contains("has protected access"), "protected access error"},
	{contains("expected"), "expected symbol not found"},
	{contains("cannot be applied"), "cannot be applied"},
	{contains("cannot override"), "override error"},
	{contains("cannot implement"), "cannot implement error"},
	{containsAll("reference to", "is ambiguous"), "ambiguious reference"},
	{containsAny("is abstract", "is not abstract", "abstract method"), "abstraction error"},
	{contains("UTF8 representation for string"), "UTF representation error"},
	{contains("duplicate class"), typeDuplicateClass},
	{contains("duplicate element"), "duplicate element"},
	{contains("clashes with"), "domain/signature clash"},
	{contains("has already been annotated"), "package has already been annotated"},
	{contains("cannot inherit from final"), "cannot inherit from final class"},
	{contains("defined in an inaccessible"), "defined in an inaccessible class or interface"},
	{contains("bad operand type"), "bad operand type"},
	{contains("import requires canonical name for"), "import requires canonical name"},
	{contains("inherited with the same signature"), "inherited with the same signature"},
	{contains("cannot directly extend"), "cannot directly extend class"},
	{contains("cyclic inheritance"), "cyclic inheritance error"},
	{containsAll("is missing", "default value"), "annotation is missing a default value"},
	{contains("Illegal static declaration"), "illegal static declaration"},
	{contains("cannot assign a value to final variable"), "cannot assign to final variable"},
	{contains("an enclosing instance that contains"), "instance of enclosing class type is required"},
	{contains("not initialized in the default constructor"), "member not initialized in the default constructor"},
	{containsAll("exception", "has already been caught"), "exception has already been caught"},
	{contains("a generic class may not extend"), "a generic class cannot extend a specific class"},
	{contains("cannot infer type arguments"), "cannot infer type arguments"},
}

const (
	typePackageNotFound = "package not found"
	typeClassOwnFile    = "class should be in its own file."
	typeUnmappable      = "unmappable character"
	typeDuplicateClass  = "duplicate class"
)

// Extract returns the compiler errors reported in a build output, in output
// order. An output from a failed dependency resolution yields a single entry
// for the manifest.
func Extract(output string) []domain.CompileError {
	if strings.Contains(output, unresolvedMarker) {
		return []domain.CompileError{Classify(unresolvedFile, unresolvedMessage)}
	}

	errs := make([]domain.CompileError, 0)
	for line := range strings.SplitSeq(output, "\n") {
		m := diagnosticRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		errs = append(errs, Classify(m[1], m[2]))
	}
	return errs
}

// Classify assigns an error type to a compiler message reported for file.
func Classify(file, msg string) domain.CompileError {
	e := domain.CompileError{File: file, Message: msg}

	if m := packageRe.FindStringSubmatch(msg); m != nil {
		e.Type = typePackageNotFound
		e.Package = m[1]
		return e
	}
	if classPublicRe.MatchString(msg) {
		e.Type = typeClassOwnFile
		return e
	}
	if m := unmappableRe.FindStringSubmatch(msg); m != nil {
		e.Type = typeUnmappable
		e.Encoding = m[1]
		return e
	}

	for _, r := range rules {
		if !r.match(msg) {
			continue
		}
		e.Type = r.typ
		if r.typ == typeDuplicateClass {
			e.Class = duplicateClassName(msg)
		}
		return e
	}

	if head, _, ok := strings.Cut(msg, ":"); ok {
		e.Type = strings.TrimSpace(head)
		return e
	}
	e.Type = msg
	return e
}

// duplicateClassName returns the field after the first colon of a
// "duplicate class: <name>" message.
func duplicateClassName(msg string) string {
	fields := strings.Split(msg, ":")
	if len(fields) < 2 {
		return ""
	}
	return strings.TrimSpace(fields[1])
}
