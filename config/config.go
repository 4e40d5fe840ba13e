package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"interview-trainer" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"interview-clips" env:"S3_BUCKET_NAME"`
		NormalizeClips  *bool  `default:"false" env:"S3_NORMALIZE_CLIPS"`
	}
	Smtp struct {
		User         string `default:"" env:"SMTP_USER"`
		Password     string `default:"" env:"SMTP_PASSWORD"`
		Host         string `default:"" env:"SMTP_HOST"`
		Port         string `default:"" env:"SMTP_PORT"`
		TLSEnabled   *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		SummaryEmail string `default:"" env:"SMTP_SUMMARY_EMAIL"` // completion summaries are sent here when set
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
	Session struct {
		SpecialQuestionIndex *int `default:"1" env:"SESSION_SPECIAL_QUESTION_INDEX"` // 0-based; -1 disables the polarity-driven branch
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
