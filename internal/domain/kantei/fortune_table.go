package kantei

// fortuneTable holds the 81 stroke-count fortunes; index 0 is count 1.
var fortuneTable = [fortuneCycle]FortuneEntry{
	{Number: 1, Grade: GradeGreatLuck, Title: "太初数", Description: "万物の始まりを表す数。健康と名誉に恵まれ、大きな発展が望めます。"},
	{Number: 2, Grade: GradeMisfortune, Title: "分離数", Description: "物事が二つに分かれる数。意志が揺らぎやすく、苦労が多くなりがちです。"},
	{Number: 3, Grade: GradeGreatLuck, Title: "明朗数", Description: "才知に富み明るい数。人望を集め、順調に成功を収めます。"},
	{Number: 4, Grade: GradeMisfortune, Title: "破壊数", Description: "不安定で崩れやすい数。努力が報われにくく、病難に注意が必要です。"},
	{Number: 5, Grade: GradeGreatLuck, Title: "福寿数", Description: "心身ともに健やかな数。家庭円満で長寿に恵まれます。"},
	{Number: 6, Grade: GradeGreatLuck, Title: "安泰数", Description: "天の恵みを受ける数。穏やかで安定した人生を送ります。"},
	{Number: 7, Grade: GradeLuck, Title: "独立数", Description: "意志が強く独立心の旺盛な数。強引さを抑えれば大成します。"},
	{Number: 8, Grade: GradeLuck, Title: "努力数", Description: "忍耐力に富む数。地道な努力で着実に成果を上げます。"},
	{Number: 9, Grade: GradeMisfortune, Title: "窮迫数", Description: "才能はあっても運が伴わない数。孤独や浮き沈みに悩みがちです。"},
	{Number: 10, Grade: GradeGreatMisfortune, Title: "空虚数", Description: "万事が空に帰す数。努力が実りにくく、慎重な歩みが求められます。"},
	{Number: 11, Grade: GradeGreatLuck, Title: "新生数", Description: "草木が芽吹くように再興する数。家運を盛り立てます。"},
	{Number: 12, Grade: GradeMisfortune, Title: "薄弱数", Description: "意志が弱く挫折しやすい数。身の丈に合った目標が大切です。"},
	{Number: 13, Grade: GradeGreatLuck, Title: "智能数", Description: "頭脳明晰で多才な数。人気者として成功を収めます。"},
	{Number: 14, Grade: GradeMisfortune, Title: "離散数", Description: "家族や縁が離れやすい数。孤独感に悩まされがちです。"},
	{Number: 15, Grade: GradeGreatLuck, Title: "統率数", Description: "徳望があり人の上に立つ数。円満に発展します。"},
	{Number: 16, Grade: GradeGreatLuck, Title: "貴人数", Description: "人の援助を得て大成する数。面倒見が良く人望があります。"},
	{Number: 17, Grade: GradeLuck, Title: "剛情数", Description: "意志が堅く困難を突破する数。柔軟さを持てば一層伸びます。"},
	{Number: 18, Grade: GradeLuck, Title: "発展数", Description: "意志と行動力に富む数。目標に向かって着実に進みます。"},
	{Number: 19, Grade: GradeMisfortune, Title: "障害数", Description: "才能があっても障害に阻まれる数。思わぬ災難に注意が必要です。"},
	{Number: 20, Grade: GradeGreatMisfortune, Title: "非業数", Description: "物事が中途で挫折しやすい数。健康面にも注意が必要です。"},
	{Number: 21, Grade: GradeGreatLuck, Title: "頭領数", Description: "独立して頭角を現す数。指導力に優れ、尊敬を集めます。"},
	{Number: 22, Grade: GradeMisfortune, Title: "秋草数", Description: "秋の草のように勢いを失う数。気力の維持が課題となります。"},
	{Number: 23, Grade: GradeGreatLuck, Title: "旭日数", Description: "朝日が昇るように勢いのある数。急速に発展します。"},
	{Number: 24, Grade: GradeGreatLuck, Title: "立身数", Description: "無から財を築く数。堅実に財運を伸ばします。"},
	{Number: 25, Grade: GradeLuck, Title: "英敏数", Description: "感性が鋭く才覚に恵まれる数。言動を和らげれば大成します。"},
	{Number: 26, Grade: GradeMisfortune, Title: "波乱数", Description: "波乱に富む数。英雄的な成功と挫折が背中合わせです。"},
	{Number: 27, Grade: GradeHalfLuck, Title: "中折数", Description: "自我が強く中途で折れやすい数。協調を心がければ安定します。"},
	{Number: 28, Grade: GradeMisfortune, Title: "遭難数", Description: "思わぬ災厄に見舞われやすい数。家族との縁も薄くなりがちです。"},
	{Number: 29, Grade: GradeHalfLuck, Title: "智謀数", Description: "知略に富み財を成す数。欲を抑えれば成功が続きます。"},
	{Number: 30, Grade: GradeHalfLuck, Title: "浮沈数", Description: "吉凶の振れ幅が大きい数。賭け事的な判断は避けましょう。"},
	{Number: 31, Grade: GradeGreatLuck, Title: "興家数", Description: "智勇を兼ね備え、家を興す数。信頼を集めて発展します。"},
	{Number: 32, Grade: GradeGreatLuck, Title: "僥倖数", Description: "思わぬ幸運に恵まれる数。目上の引き立てで開運します。"},
	{Number: 33, Grade: GradeGreatLuck, Title: "昇天数", Description: "勢い盛んで権威を得る数。頂点を極める力があります。"},
	{Number: 34, Grade: GradeGreatMisfortune, Title: "破家数", Description: "災厄が重なりやすい数。家庭の不和に注意が必要です。"},
	{Number: 35, Grade: GradeLuck, Title: "温和数", Description: "穏やかで誠実な数。学術や技芸の分野で成功します。"},
	{Number: 36, Grade: GradeMisfortune, Title: "英雄数", Description: "義侠心が強く波乱に富む数。他人のために苦労しがちです。"},
	{Number: 37, Grade: GradeLuck, Title: "権威数", Description: "独立心が強く信望を得る数。着実に地位を築きます。"},
	{Number: 38, Grade: GradeHalfLuck, Title: "文芸数", Description: "芸術的才能に恵まれる数。指導者よりも専門家向きです。"},
	{Number: 39, Grade: GradeLuck, Title: "富貴数", Description: "富と名誉に恵まれる数。晩年に大きな実りを得ます。"},
	{Number: 40, Grade: GradeMisfortune, Title: "変化数", Description: "浮き沈みが激しい数。謙虚さを保つことが大切です。"},
	{Number: 41, Grade: GradeGreatLuck, Title: "高名数", Description: "徳と才を兼ね備えた数。名声を得て大成します。"},
	{Number: 42, Grade: GradeMisfortune, Title: "博達数", Description: "多芸多才ながら器用貧乏に陥りやすい数。一筋の努力が鍵です。"},
	{Number: 43, Grade: GradeMisfortune, Title: "散財数", Description: "財が散りやすい数。表面の華やかさに惑わされないことです。"},
	{Number: 44, Grade: GradeGreatMisfortune, Title: "魔障数", Description: "災厄や障害が続きやすい数。慎重な判断が求められます。"},
	{Number: 45, Grade: GradeLuck, Title: "順風数", Description: "順風満帆に進む数。計画が着実に実を結びます。"},
	{Number: 46, Grade: GradeMisfortune, Title: "載宝沈舟数", Description: "宝を積んだ舟が沈むように、苦労が報われにくい数です。"},
	{Number: 47, Grade: GradeGreatLuck, Title: "開花数", Description: "努力が花開く数。協力者に恵まれ大きく発展します。"},
	{Number: 48, Grade: GradeLuck, Title: "有徳数", Description: "知恵と徳に富む数。相談役として信頼を集めます。"},
	{Number: 49, Grade: GradeHalfLuck, Title: "転変数", Description: "吉凶が入れ替わりやすい数。環境の変化に柔軟に対応しましょう。"},
	{Number: 50, Grade: GradeMisfortune, Title: "衰退数", Description: "一時の成功の後に衰えやすい数。晩年の備えが大切です。"},
	{Number: 51, Grade: GradeHalfLuck, Title: "盛衰数", Description: "盛りと衰えが交互に訪れる数。好調時の慢心に注意です。"},
	{Number: 52, Grade: GradeLuck, Title: "先見数", Description: "先見の明があり大業を成す数。計画力に優れます。"},
	{Number: 53, Grade: GradeMisfortune, Title: "内憂数", Description: "外見は華やかでも内に悩みを抱える数です。"},
	{Number: 54, Grade: GradeGreatMisfortune, Title: "辛苦数", Description: "困難が重なりやすい数。忍耐が試されます。"},
	{Number: 55, Grade: GradeMisfortune, Title: "不安数", Description: "外見は盛んでも内実が伴わない数。実力の充実が課題です。"},
	{Number: 56, Grade: GradeMisfortune, Title: "消極数", Description: "気力や実行力が不足しがちな数。早めの行動を心がけましょう。"},
	{Number: 57, Grade: GradeLuck, Title: "努力開運数", Description: "困難を越えて開運する数。努力が必ず報われます。"},
	{Number: 58, Grade: GradeHalfLuck, Title: "晩成数", Description: "苦労の後に福が訪れる数。晩年に安定を得ます。"},
	{Number: 59, Grade: GradeMisfortune, Title: "停滞数", Description: "意志と実行力が不足しがちな数。目標を明確にしましょう。"},
	{Number: 60, Grade: GradeMisfortune, Title: "暗黒数", Description: "先が見えず迷いやすい数。信頼できる助言者が支えになります。"},
	{Number: 61, Grade: GradeLuck, Title: "名利数", Description: "名誉と利益に恵まれる数。謙虚さを保てば長く栄えます。"},
	{Number: 62, Grade: GradeMisfortune, Title: "孤独数", Description: "基盤が固まりにくい数。人との縁を大切にしましょう。"},
	{Number: 63, Grade: GradeLuck, Title: "順調数", Description: "万事が順調に運ぶ数。家庭も仕事も安定します。"},
	{Number: 64, Grade: GradeMisfortune, Title: "沈滞数", Description: "運気が沈みがちな数。気分転換と健康管理が大切です。"},
	{Number: 65, Grade: GradeLuck, Title: "富貴長寿数", Description: "家運が栄え長寿に恵まれる数です。"},
	{Number: 66, Grade: GradeMisfortune, Title: "岐路数", Description: "進退に迷いやすい数。誠実さが道を開きます。"},
	{Number: 67, Grade: GradeLuck, Title: "天恵数", Description: "天の恵みを受けて発展する数。独立して成功します。"},
	{Number: 68, Grade: GradeLuck, Title: "発明数", Description: "創意工夫に富む数。思慮深く着実に成果を上げます。"},
	{Number: 69, Grade: GradeMisfortune, Title: "不安定数", Description: "落ち着きを欠きやすい数。生活の基盤づくりが大切です。"},
	{Number: 70, Grade: GradeMisfortune, Title: "空虚数", Description: "物事が実を結びにくい数。焦らず積み重ねることが大切です。"},
	{Number: 71, Grade: GradeHalfLuck, Title: "温厚数", Description: "努力次第で安定を得る数。実行力を養いましょう。"},
	{Number: 72, Grade: GradeMisfortune, Title: "苦労数", Description: "表は吉でも裏に苦労を抱える数。無理は禁物です。"},
	{Number: 73, Grade: GradeHalfLuck, Title: "平安数", Description: "大きな望みは叶いにくいが平穏を得る数です。"},
	{Number: 74, Grade: GradeMisfortune, Title: "無為数", Description: "才能を持て余しやすい数。積極的な挑戦が鍵です。"},
	{Number: 75, Grade: GradeHalfLuck, Title: "守成数", Description: "守りに徹すれば安泰な数。分相応を心がけましょう。"},
	{Number: 76, Grade: GradeMisfortune, Title: "離散数", Description: "家族や財が散りやすい数。堅実な生活を心がけましょう。"},
	{Number: 77, Grade: GradeHalfLuck, Title: "晩苦数", Description: "前半は順調でも後半に苦労しやすい数。備えが大切です。"},
	{Number: 78, Grade: GradeHalfLuck, Title: "晩衰数", Description: "中年まで栄え晩年に衰えやすい数。健康管理が鍵です。"},
	{Number: 79, Grade: GradeMisfortune, Title: "不信数", Description: "信用を失いやすい数。誠実な態度が運を支えます。"},
	{Number: 80, Grade: GradeMisfortune, Title: "隠遁数", Description: "一生に波乱が多い数。心を静めて身を守りましょう。"},
	{Number: 81, Grade: GradeGreatLuck, Title: "還元数", Description: "1に還る最上の数。万物の始まりと同じく大いに栄えます。"},
}
