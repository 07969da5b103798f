package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

// Method numbers the market actor calls on other builtin actors. Exported
// methods carry FRC-0042 hashed numbers; the rest are positional.
var MethodsAccount = struct {
	Constructor                 abi.MethodNum
	AuthenticateMessage         abi.MethodNum
	AuthenticateMessageExported abi.MethodNum
}{
	MethodConstructor,
	3,
	2643134072,
}

var MethodsMiner = struct {
	Constructor      abi.MethodNum
	ControlAddresses abi.MethodNum
}{
	MethodConstructor,
	2,
}

var MethodsReward = struct {
	Constructor     abi.MethodNum
	ThisEpochReward abi.MethodNum
}{
	MethodConstructor,
	3,
}

var MethodsPower = struct {
	Constructor       abi.MethodNum
	CurrentTotalPower abi.MethodNum
}{
	MethodConstructor,
	9,
}

var MethodsDatacap = struct {
	Constructor          abi.MethodNum
	BalanceExported      abi.MethodNum
	TransferFromExported abi.MethodNum
}{
	MethodConstructor,
	3261979605,
	3621052141,
}

// Methods exported by the market actor itself. The cron entry point keeps a
// positional number because only the cron actor may call it; everything a
// user or another actor may invoke carries its FRC-0042 number.
var MethodsMarket = struct {
	Constructor                       abi.MethodNum
	AddBalance                        abi.MethodNum
	WithdrawBalance                   abi.MethodNum
	PublishStorageDeals               abi.MethodNum
	VerifyDealsForActivation          abi.MethodNum
	ActivateDeals                     abi.MethodNum
	OnMinerSectorsTerminate           abi.MethodNum
	ComputeDataCommitment             abi.MethodNum
	CronTick                          abi.MethodNum
	AddBalanceExported                abi.MethodNum
	WithdrawBalanceExported           abi.MethodNum
	PublishStorageDealsExported       abi.MethodNum
	GetBalanceExported                abi.MethodNum
	GetDealDataCommitmentExported     abi.MethodNum
	GetDealClientExported             abi.MethodNum
	GetDealProviderExported           abi.MethodNum
	GetDealLabelExported              abi.MethodNum
	GetDealTermExported               abi.MethodNum
	GetDealTotalPriceExported         abi.MethodNum
	GetDealClientCollateralExported   abi.MethodNum
	GetDealProviderCollateralExported abi.MethodNum
	GetDealVerifiedExported           abi.MethodNum
	GetDealActivationExported         abi.MethodNum
}{
	MethodConstructor,
	2,
	3,
	4,
	5,
	6,
	7,
	8,
	9,
	822473126,
	2280458852,
	2236929350,
	726108461,
	1157985802,
	128053329,
	935081690,
	46363526,
	163777312,
	4287162428,
	200567895,
	2986712137,
	2627389465,
	2567238399,
}

// MarketNotifyDeal is the method the market invokes on a deal client after a
// successful publish (FRC-0042 exported number for "MarketNotifyDeal").
const MarketNotifyDeal = abi.MethodNum(4186741094)
