/*
Package server provides a small generic HTTP server on top of chi.
Handlers take an application-specific state object (used for dependency injection)
and an [Exchange] which wraps the request and offers decoding and rendering helpers.
Errors returned by handlers are rendered as an [ErrorResponse] by the error handler.

Basic example:

	func main() {
		cfg, _ := config.Load(os.DirFS("."))
		state := state.New(...)
		s := server.New(state, cfg)
		s.AttachDefaultMiddleware()

		s.Get("/customers/{id}", GetCustomer)

		log.Fatal(s.Start(context.Background(), nil))
	}

	func GetCustomer(ex *server.Exchange, state *state.State) error {
		id, err := core.ParseCustomerID(ex.GetPath("id"))
		if err != nil {
			return err
		}
		customer, err := state.Customers.SearchCustomerByID(ex.Context(), id)
		if err != nil {
			return err
		}
		ex.RenderJSON(customer)
		return nil
	}
*/
package server
