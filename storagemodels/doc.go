/*
Package storagemodels contains the shared types passed between datastores and
their callers.

Item[T] pairs an entity with the integer id it is stored under. Every backend
returns items from List in insertion order, which is what lets callers derive
the next id as the current maximum plus one.

QueryParams pages a listing:

	params := &storagemodels.QueryParams{Offset: 1, Limit: 2}
	if err := params.Validate(); err != nil {
	    return err
	}
	items, err := store.List(ctx, params)

A nil *QueryParams is valid everywhere and means "everything".
*/
package storagemodels
