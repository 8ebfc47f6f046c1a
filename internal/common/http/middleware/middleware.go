package middleware

import (
	"github.com/svnhec/qoda-sub003/internal/config"
)

type AppMiddleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) AppMiddleware {
	return AppMiddleware{
		conf: conf,
	}
}
