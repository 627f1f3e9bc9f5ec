// Package config loads process configuration from the environment into
// tagged structs.
//
// Values come from the process environment, optionally seeded from .env
// files through github.com/joho/godotenv, and are parsed into structs with
// github.com/caarlos0/env/v11 tags:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Variables already set in the environment win over .env files. Missing
// .env files are ignored, so the same binary runs with or without one.
//
// Nested structs are parsed too, which lets each module own its section:
//
//	type App struct {
//		Contact contact.Config
//		Redis   redis.Config
//	}
//
// Use WithPrefix to namespace a section and WithEnvironment to feed a
// fixed map instead of the process environment, which is what tests do.
package config
