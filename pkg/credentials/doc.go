// Package credentials defines access-key credentials and the providers that
// discover them from ambient configuration.
//
// # Providers
//
// A Provider supplies credentials on demand:
//
//	type Provider interface {
//		Retrieve() (Credentials, error)
//	}
//
// Providers signal "I have nothing" with ErrNoCredentials so chains can fall
// through; any other error is treated as fatal and stops the chain.
//
// Included implementations:
//
//   - StaticProvider : fixed credentials supplied by the caller
//   - EnvProvider    : NIMBUS_ACCESS_KEY_ID / NIMBUS_SECRET_ACCESS_KEY
//   - ProfileProvider: the shared configuration file ~/.nimbus/config.toml
//
// # The default chain
//
// DefaultChain combines the ambient providers in the standard order and is
// what the client configuration pipeline binds as the global credentials
// fallback when the caller supplied no provider:
//
//	creds, err := credentials.DefaultChain().Retrieve()
//	if err != nil {
//		log.Fatal("no credentials available:", err)
//	}
//	fmt.Println("using credentials from", creds.Source)
//
// # Explicit credentials
//
// Pass a StaticProvider to the client builder to bypass ambient lookup:
//
//	builder.CredentialsProvider(credentials.StaticProvider{
//		Credentials: credentials.Credentials{
//			AccessKeyID:     "NKIAEXAMPLE",
//			SecretAccessKey: "secret",
//		},
//	})
//
// An explicitly configured provider always wins over every default layer.
package credentials
