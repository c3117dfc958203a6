package driver

// preamble is injected ahead of every user source file so that the global
// identifiers the runtime provides resolve as Extern bindings instead of
// falling through as undeclared implicit globals.
const preamble = `extern var alert,undefined;
extern var Object, Function, Array, String, Boolean, Number, Date, RegExp;
extern var Error, EvalError, RangeError, ReferenceError, SyntaxError, TypeError, URIError;
extern var Math;
`

const preambleName = "<preamble>"
