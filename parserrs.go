package kcalc

import "strconv"

// SyntaxError is an error indicating that the parser stopped making progress
// on an expression. It implements InputError.
type SyntaxError struct {
	// Col is the number of runes the lexer had consumed when parsing stopped.
	// It is never less than 1, so that an error at the very start of an
	// expression is distinguishable from no error.
	Col int
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "syntax error")
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// Kind returns ErrSyntax.
func (err *SyntaxError) Kind() ErrorKind {
	return ErrSyntax
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// malformed expression text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes consumed
	// up to and including the token that caused the error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
