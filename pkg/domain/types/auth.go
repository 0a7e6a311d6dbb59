package types

import "log/slog"

type (
	JWTSecret string
	JWTIssuer string
)

func (x JWTSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x JWTSecret) String() string {
	return "***********"
}
