package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Hotmart      Hotmart      `mapstructure:",squash"`
	ManyChat     ManyChat     `mapstructure:",squash"`
	MetaAds      MetaAds      `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	SalesRefresh SalesRefresh `mapstructure:",squash"`

	// Users é a lista de usuários do dashboard, montada a partir de DASHBOARD_USERS
	Users []domain.DashboardUser `mapstructure:"-"`

	// Spreadsheets mapeia a chave de planilha de cada campanha para o ID configurado
	Spreadsheets map[string]string `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Hotmart struct {
	AuthURL        string `mapstructure:"hotmart_auth_url"`
	BaseURL        string `mapstructure:"hotmart_api_base"`
	BasicToken     string `mapstructure:"hotmart_basic_token"`
	TimeoutSeconds int    `mapstructure:"hotmart_timeout_seconds"`
}

type ManyChat struct {
	BaseURL  string `mapstructure:"manychat_base_url"`
	APIToken string `mapstructure:"manychat_api_token"`
}

type MetaAds struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
}

type Sheets struct {
	ConnectorHost        string `mapstructure:"sheets_connector_host"`
	IdentityToken        string `mapstructure:"sheets_identity_token"`
	SpreadsheetID        string `mapstructure:"google_spreadsheet_id"`
	SpreadsheetIDImersao string `mapstructure:"google_spreadsheet_id_imersao0126"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`

	// UsersRaw declara os usuários no formato email|hash_bcrypt|role,
	// separados por vírgula
	UsersRaw string `mapstructure:"dashboard_users"`
}

type Cache struct {
	TTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type SalesRefresh struct {
	CronSchedule string `mapstructure:"sales_refresh_cron"`
	Enabled      bool   `mapstructure:"sales_refresh_enabled"`
}

// TTL retorna o TTL do cache de integrações
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Timeout retorna o timeout do cliente HTTP da Hotmart
func (h Hotmart) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("HOTMART_AUTH_URL", "https://api-sec-vlc.hotmart.com/security/oauth/token")
	viper.SetDefault("HOTMART_API_BASE", "https://developers.hotmart.com/payments/api/v1")
	viper.SetDefault("HOTMART_BASIC_TOKEN", "")
	viper.SetDefault("HOTMART_TIMEOUT_SECONDS", 30)

	viper.SetDefault("MANYCHAT_BASE_URL", "https://api.manychat.com/fb")
	viper.SetDefault("MANYCHAT_API_TOKEN", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")

	viper.SetDefault("SHEETS_CONNECTOR_HOST", "")
	viper.SetDefault("SHEETS_IDENTITY_TOKEN", "")
	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_SPREADSHEET_ID_IMERSAO0126", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("DASHBOARD_USERS", "")

	// TTL curto: evita chamadas remotas redundantes a cada render do dashboard
	viper.SetDefault("CACHE_TTL_SECONDS", 300)

	// Pré-aquecimento do cache de vendas das campanhas ativas
	viper.SetDefault("SALES_REFRESH_CRON", "*/10 * * * *")
	viper.SetDefault("SALES_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Users = parseUsers(config.Auth.UsersRaw)
	config.Spreadsheets = map[string]string{
		"default":     config.Sheets.SpreadsheetID,
		"imersao0126": config.Sheets.SpreadsheetIDImersao,
	}

	return config, nil
}

// parseUsers monta a lista de usuários a partir de DASHBOARD_USERS.
// Entradas malformadas são ignoradas com aviso, nunca derrubam o boot.
func parseUsers(raw string) []domain.DashboardUser {
	if raw == "" {
		return nil
	}

	var users []domain.DashboardUser
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), "|")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			logrus.Warnf("Entrada de usuário ignorada em DASHBOARD_USERS: %q", entry)
			continue
		}

		role := parts[2]
		if role != domain.RoleAdmin && role != domain.RoleViewer {
			role = domain.RoleViewer
		}

		users = append(users, domain.DashboardUser{
			Email:        strings.ToLower(parts[0]),
			PasswordHash: parts[1],
			Role:         role,
		})
	}

	return users
}

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
