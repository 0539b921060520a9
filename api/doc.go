/*
Package api simulates a small user and post API over two datastores.

Seed data is passed to the constructor and only written into empty stores,
so a persistent backend keeps what earlier runs added:

	svc, err := api.New(ctx, memory.New[api.User](), memory.New[api.Post](), api.DefaultSeed())

	u, err := svc.GetUser(ctx, 1)
	if errors.IsNotFound(err) {
	    payload := api.ErrorPayloadFor(err) // {"error": "User not found"}
	}

	res, err := svc.AddUser(ctx, "David", 28, "david@example.com")
	// res.ID is one more than the largest existing id, or 1 for an empty store.

User and Post carry dynamodbav tags and register DynamoDB index maps, so both
work with every backend under datastore/.
*/
package api
