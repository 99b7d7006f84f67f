package domain

const (
	// MinOwners, MaxOwners 擁有者數量範圍 (含建立者)
	MinOwners = 2
	MaxOwners = 4
	// MaxAccountsPerOwner 每個擁有者最多可持有的帳戶數
	MaxAccountsPerOwner = 3
)

// DefaultMinFunding 開戶最低金額，以最小貨幣單位計 (1000 gwei)
const DefaultMinFunding int64 = 1_000_000_000_000

// Rules 帳本可設定的規則
type Rules struct {
	// MinFunding 開戶最低金額
	MinFunding int64 `yaml:"min_funding" env:"MIN_FUNDING"`
}

// DefaultRules 回傳預設規則
func DefaultRules() Rules {
	return Rules{MinFunding: DefaultMinFunding}
}

// WithDefaults 補全未設定的欄位
func (r Rules) WithDefaults() Rules {
	if r.MinFunding == 0 {
		r.MinFunding = DefaultMinFunding
	}
	return r
}
