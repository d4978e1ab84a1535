// Package environment names the deployment stage a process runs in and
// carries it through request contexts.
//
//	env := environment.Parse(cfg.Env) // "prod" -> environment.Production
//	r.Use(environment.Middleware(env))
//
// Handlers read it back with FromContext, and LoggerExtractor adds it to every
// log record written with the request context.
package environment
