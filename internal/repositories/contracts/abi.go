package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// lockerABIJson covers the read side of the ERC721 enumerable lockers (xsLocker, UnderwritingLocker).
// locks() returns a static Lock{amount, end} struct, which is encoded the same way as two flat outputs.
const lockerABIJson = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"tokenOfOwnerByIndex","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"locks","stateMutability":"view","inputs":[{"name":"lockID","type":"uint256"}],"outputs":[{"name":"amount","type":"uint256"},{"name":"end","type":"uint256"}]}
]`

// rewardsABIJson covers the read side of the staking rewards ledger that boosts xsLocker locks.
// stakedLockInfo() returns a static StakedLockInfo{value, rewardDebt, unpaidRewards, owner} struct.
const rewardsABIJson = `[
	{"type":"function","name":"stakedLockInfo","stateMutability":"view","inputs":[{"name":"xsLockID","type":"uint256"}],"outputs":[{"name":"value","type":"uint256"},{"name":"rewardDebt","type":"uint256"},{"name":"unpaidRewards","type":"uint256"},{"name":"owner","type":"address"}]},
	{"type":"function","name":"pendingRewardsOfLock","stateMutability":"view","inputs":[{"name":"xsLockID","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"rewardPerSecond","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"valueStaked","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

var (
	LockerABI  = mustParseABI(lockerABIJson)
	RewardsABI = mustParseABI(rewardsABIJson)
)

func mustParseABI(data string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(data))
	if err != nil {
		panic("invalid ABI: " + err.Error())
	}
	return parsed
}
