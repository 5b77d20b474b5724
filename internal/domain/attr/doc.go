// Package attr binds declared attribute names to coercion tags and routes
// every write through a coerce.Engine before the value is stored.
//
// A Binder owns named schemas. Each Schema is a declaration table of
// (name, tag) pairs, validated when declared, and sealed once the first
// Object is created from it. Objects hold one slot per declared attribute:
//
//	binder := attr.NewBinder(engine, attr.WithLogger(logger))
//	invoice, err := binder.Define("invoice", map[string]coerce.Tag{
//		"number": coerce.TagStrictInteger,
//		"total":  coerce.TagMoney,
//		"due":    coerce.TagDate,
//	})
//	obj := invoice.New()
//	err = obj.Set(ctx, "total", "12.50") // stored as *money.Money
//
// Reads return the stored value unchanged. A rejected write leaves the
// previous value in place and returns a *WriteError.
//
// Objects are not safe for concurrent writes. Callers sharing an Object
// across goroutines must synchronize access themselves.
package attr
