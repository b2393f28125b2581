package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// GetLogger คืน logger กลางของระบบ (logrus, JSON format)
func GetLogger() *logrus.Logger {
	return logg
}

// LogError log error พร้อม context ว่าเกิดที่ module/function ไหน
func LogError(moduleName, funcName string, err error) {
	logg.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
	}).Error(err.Error())
}
