package domain

// Principal 已通過驗證的呼叫者識別 (由外部環境提供，核心不做驗證)
type Principal string

// IsZero 是否為空的識別
func (p Principal) IsZero() bool {
	return p == ""
}

func (p Principal) String() string {
	return string(p)
}
