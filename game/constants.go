package game

// 物理与难度常量（硬编码，不可配置）
const (
	Gravity     = 1600.0 // px/s²
	FloorOffset = 90.0   // 地面线距视口底部
	MaxStep     = 0.033  // 单帧 dt 上限，防止慢帧穿透

	PlayerW     = 34.0
	PlayerH     = 44.0
	PlayerSpeed = 760.0
	PlayerJump  = 680.0
	PlayerAccel = 12.0
	WallMargin  = 10.0

	StartHP       = 3
	StartLevel    = 1
	WinLevel      = 8
	ProgressMax   = 100.0
	CoinScore     = 10
	CoinProgress  = 6.0
	LevelUpBonus  = 50
	HazardOffside = 120.0 // 越出视口多远后清理

	coinRadius    = 10.0
	coinHitPad    = 2.0
	coinWobbleAmp = 6.0
	coinWobbleHz  = 6.0

	GlitchOnHit     = 0.35
	GlitchOnLevelUp = 0.55
)

// 各类粒子爆发：数量与最大速度
const (
	burstJumpN, burstJumpPower       = 16, 220.0
	burstHitN, burstHitPower         = 26, 260.0
	burstCoinN, burstCoinPower       = 18, 230.0
	burstLevelUpN, burstLevelUpPower = 50, 420.0
)
