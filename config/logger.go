package config

import "go.uber.org/zap"

var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func InitLogger() {
	var err error
	if env := getEnv("APP_ENV", "development"); env == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	SLog = Log.Sugar()
}
